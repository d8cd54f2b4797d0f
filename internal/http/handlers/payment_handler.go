// Manual payment HTTP handlers.
//
// This file exposes the REST endpoints of the reconciliation core:
//   - POST  /payments/manual             (public: donor reports a transfer)
//   - GET   /payments/manual/pending     (admin/owner work queue)
//   - PATCH /payments/manual/:id/verify  (admin/owner: finalize a report)
//
// Submission is open to unauthenticated callers so donors can report their
// own transfers; duplicate reference numbers are rejected inline with a
// specific error so the donor can correct and resubmit. Verification is
// role-gated and cascades a verified outcome into the linked donation.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tbourn/go-donation-backend/internal/http/middleware"
	"github.com/tbourn/go-donation-backend/internal/services"
)

// SubmitPaymentRequest is the JSON payload for reporting a manual transfer.
type SubmitPaymentRequest struct {
	DonationID      *string         `json:"donation_id,omitempty" format:"uuid"`
	ReferenceNumber string          `json:"reference_number" binding:"required" example:"REF1234567890"`
	Amount          decimal.Decimal `json:"amount" binding:"required" example:"2750"`
	SenderNumber    *string         `json:"sender_number,omitempty" example:"09171234567"`
}

// VerifyPaymentRequest is the JSON payload for finalizing a pending report.
type VerifyPaymentRequest struct {
	Status string `json:"status" binding:"required,oneof=verified rejected" example:"verified"`
}

// SubmitManualPayment godoc
// @ID          submitManualPayment
// @Summary     Report a manual transfer
// @Description Records a self-reported transfer awaiting human verification. Duplicate reference numbers are rejected.
// @Tags        ManualPayments
// @Accept      json
// @Produce     json
// @Param       body body handlers.SubmitPaymentRequest true "Reported transfer"
// @Success     201  {object} domain.ManualPayment
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404  {object} handlers.ErrorResponse "Linked donation not found"
// @Failure     409  {object} handlers.ErrorResponse "Reference number already submitted"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /payments/manual [post]
func (h *Handlers) SubmitManualPayment(c *gin.Context) {
	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "reference number and amount are required")
		return
	}

	p, err := h.paymentSvc.Submit(c.Request.Context(), req.DonationID, req.ReferenceNumber, req.Amount, req.SenderNumber)
	if err != nil {
		switch err {
		case services.ErrMissingReference:
			fail(c, http.StatusBadRequest, ErrCodeValidation, "reference number is required")
		case services.ErrInvalidAmount:
			fail(c, http.StatusBadRequest, ErrCodeInvalidAmount, "amount must be positive")
		case services.ErrDonationNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "donation not found")
		case services.ErrDuplicateReference:
			fail(c, http.StatusConflict, ErrCodeDuplicateReference, "reference number already submitted")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, p)
}

// PendingPayments godoc
// @ID          pendingPayments
// @Summary     List the verification work queue
// @Description Returns all manual payments still pending, newest first.
// @Tags        ManualPayments
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}  domain.ManualPayment
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     403  {object} handlers.ErrorResponse "Insufficient permissions"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /payments/manual/pending [get]
func (h *Handlers) PendingPayments(c *gin.Context) {
	out, err := h.paymentSvc.PendingQueue(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// VerifyPayment godoc
// @ID          verifyPayment
// @Summary     Finalize a pending manual payment
// @Description Marks the payment verified or rejected on behalf of the acting user. A verified outcome cascades the linked donation to completed in the same transaction.
// @Tags        ManualPayments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string true "Payment ID (UUID)" format(uuid)
// @Param       body body handlers.VerifyPaymentRequest true "Outcome"
// @Success     200  {object} domain.ManualPayment
// @Failure     400  {object} handlers.ErrorResponse "Invalid outcome"
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     403  {object} handlers.ErrorResponse "Insufficient permissions"
// @Failure     404  {object} handlers.ErrorResponse "Payment not found"
// @Failure     409  {object} handlers.ErrorResponse "Payment already finalized"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /payments/manual/{id}/verify [patch]
func (h *Handlers) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "status must be verified or rejected")
		return
	}

	actor := middleware.UserFrom(c)
	if actor == nil {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "authentication required")
		return
	}

	p, err := h.paymentSvc.Verify(c.Request.Context(), c.Param("id"), req.Status, actor.ID)
	if err != nil {
		switch err {
		case services.ErrPaymentNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "payment not found")
		case services.ErrAlreadyFinalized:
			fail(c, http.StatusConflict, ErrCodeAlreadyFinalized, "payment already finalized")
		case services.ErrInvalidOutcome:
			fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, p)
}
