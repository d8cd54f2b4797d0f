package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-donation-backend/internal/services"
	"github.com/tbourn/go-donation-backend/internal/utils"
)

// ContactRequest is the JSON payload for the public contact form.
type ContactRequest struct {
	FirstName        string `json:"first_name" binding:"required" example:"Maria"`
	LastName         string `json:"last_name" binding:"required" example:"Santos"`
	Email            string `json:"email" binding:"required,email" example:"maria@example.com"`
	Subject          string `json:"subject" binding:"required" example:"Receipt request"`
	InquiryType      string `json:"inquiry_type" binding:"required" example:"donation"`
	Message          string `json:"message" binding:"required" example:"Could you send a receipt for my last donation?"`
	SubscribeUpdates bool   `json:"subscribe_updates"`
}

// UpdateContactRequest marks a message read or responded.
type UpdateContactRequest struct {
	Status string `json:"status" binding:"required,oneof=unread read responded" example:"read"`
}

// CreateContactMessage godoc
// @ID          createContactMessage
// @Summary     Submit a contact message
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Param       body body handlers.ContactRequest true "Message"
// @Success     201  {object} domain.ContactMessage
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /contact [post]
func (h *Handlers) CreateContactMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "all contact fields are required")
		return
	}

	msg, err := h.contactSvc.Create(c.Request.Context(), services.ContactInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Subject:          req.Subject,
		InquiryType:      req.InquiryType,
		Message:          req.Message,
		SubscribeUpdates: req.SubscribeUpdates,
	})
	if err != nil {
		if err == services.ErrInvalidContact {
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusCreated, msg)
}

// ListContactMessages godoc
// @ID          listContactMessages
// @Summary     List contact messages
// @Tags        Contact
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query int false "Page size (default 50)"
// @Param       offset query int false "Offset (default 0)"
// @Success     200  {array}  domain.ContactMessage
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     403  {object} handlers.ErrorResponse "Insufficient permissions"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /contact [get]
func (h *Handlers) ListContactMessages(c *gin.Context) {
	limit, offset := utils.PageParams(c.Query("limit"), c.Query("offset"), 50)

	out, err := h.contactSvc.List(c.Request.Context(), limit, offset)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// UpdateContactMessage godoc
// @ID          updateContactMessage
// @Summary     Update a contact message's status
// @Tags        Contact
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string true "Message ID (UUID)" format(uuid)
// @Param       body body handlers.UpdateContactRequest true "New status"
// @Success     200  {object} domain.ContactMessage
// @Failure     400  {object} handlers.ErrorResponse "Invalid status"
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     403  {object} handlers.ErrorResponse "Insufficient permissions"
// @Failure     404  {object} handlers.ErrorResponse "Message not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /contact/{id} [patch]
func (h *Handlers) UpdateContactMessage(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "status must be unread, read or responded")
		return
	}

	msg, err := h.contactSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch err {
		case services.ErrContactNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "message not found")
		case services.ErrInvalidContactStatus:
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, msg)
}
