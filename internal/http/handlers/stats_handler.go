package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminStats godoc
// @ID          adminStats
// @Summary     Admin dashboard metrics
// @Description Aggregate donation totals plus pending contact and verification counts.
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object} services.AdminStats
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     403  {object} handlers.ErrorResponse "Insufficient permissions"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /stats/admin [get]
func (h *Handlers) AdminStats(c *gin.Context) {
	out, err := h.donationSvc.AdminStats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// OwnerStats godoc
// @ID          ownerStats
// @Summary     Owner revenue metrics
// @Description Completed-donation revenue, monthly revenue, distinct donor count and a per-method breakdown.
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object} services.OwnerStats
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     403  {object} handlers.ErrorResponse "Insufficient permissions"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /stats/owner [get]
func (h *Handlers) OwnerStats(c *gin.Context) {
	out, err := h.donationSvc.OwnerStats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}
