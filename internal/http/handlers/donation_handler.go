// Donation HTTP handlers.
//
// This file exposes the REST endpoints around donation records:
//   - POST  /donations      (public submission from any channel)
//   - GET   /donations      (admin/owner recency-bounded listing)
//   - PATCH /donations/:id  (admin/owner status correction)
//
// Handlers in this file are transport-thin: they validate input, delegate to
// the donation service, and translate service errors into HTTP results.
// Amounts travel as exact decimals end to end.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tbourn/go-donation-backend/internal/services"
	"github.com/tbourn/go-donation-backend/internal/utils"
)

// CreateDonationRequest is the JSON payload for recording a donation.
//
// Channels that confirm synchronously (card, redirect) may pass status
// "completed" together with the processor reference; the manual channel
// leaves status empty and the record starts out pending.
type CreateDonationRequest struct {
	DonorName        *string         `json:"donor_name,omitempty" example:"Maria Santos"`
	DonorEmail       *string         `json:"donor_email,omitempty" example:"maria@example.com"`
	Amount           decimal.Decimal `json:"amount" binding:"required" example:"50.00"`
	Currency         string          `json:"currency,omitempty" example:"USD"`
	PaymentMethod    string          `json:"payment_method" binding:"required,oneof=card redirect manual" example:"manual"`
	PaymentReference *string         `json:"payment_reference,omitempty" example:"pi_3PqX..."`
	Status           string          `json:"status,omitempty" binding:"omitempty,oneof=pending completed failed" example:"pending"`
	IsAnonymous      bool            `json:"is_anonymous" example:"false"`
	DonationType     string          `json:"donation_type,omitempty" binding:"omitempty,oneof=one-time monthly" example:"one-time"`
}

// UpdateDonationRequest is the JSON payload for an admin status correction.
type UpdateDonationRequest struct {
	Status     string     `json:"status" binding:"required,oneof=pending completed failed" example:"completed"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// CreateDonation godoc
// @ID          createDonation
// @Summary     Record a donation
// @Description Stores a donation from any payment channel. Anonymous donations never retain donor identity.
// @Tags        Donations
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreateDonationRequest true "Donation payload"
// @Success     201  {object} domain.Donation
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /donations [post]
func (h *Handlers) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "invalid donation payload")
		return
	}

	d, err := h.donationSvc.Submit(c.Request.Context(), services.SubmitDonationInput{
		DonorName:        req.DonorName,
		DonorEmail:       req.DonorEmail,
		Amount:           req.Amount,
		Currency:         req.Currency,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		Status:           req.Status,
		IsAnonymous:      req.IsAnonymous,
		DonationType:     req.DonationType,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			fail(c, http.StatusBadRequest, ErrCodeInvalidAmount, "amount must be positive")
		case services.ErrInvalidCurrency, services.ErrInvalidMethod, services.ErrInvalidStatus, services.ErrInvalidDonationType:
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, d)
}

// ListDonations godoc
// @ID          listDonations
// @Summary     List donations
// @Description Returns donations newest first, bounded by limit/offset (defaults 50/0).
// @Tags        Donations
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query int false "Page size (default 50)"
// @Param       offset query int false "Offset (default 0)"
// @Success     200  {array}  domain.Donation
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     403  {object} handlers.ErrorResponse "Insufficient permissions"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /donations [get]
func (h *Handlers) ListDonations(c *gin.Context) {
	limit, offset := utils.PageParams(c.Query("limit"), c.Query("offset"), 50)

	out, err := h.donationSvc.List(c.Request.Context(), limit, offset)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// UpdateDonation godoc
// @ID          updateDonation
// @Summary     Correct a donation's status
// @Description Admin correction path; the manual verification flow cascades automatically.
// @Tags        Donations
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string true "Donation ID (UUID)" format(uuid)
// @Param       body body handlers.UpdateDonationRequest true "New status"
// @Success     200  {object} domain.Donation
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404  {object} handlers.ErrorResponse "Donation not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /donations/{id} [patch]
func (h *Handlers) UpdateDonation(c *gin.Context) {
	var req UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "status must be pending, completed, or failed")
		return
	}

	d, err := h.donationSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.VerifiedAt)
	if err != nil {
		switch err {
		case services.ErrDonationNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "donation not found")
		case services.ErrInvalidStatus:
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, d)
}
