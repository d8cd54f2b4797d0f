// Gateway handlers bridge the browser to the configured payment
// collaborators: card intents for on-page card entry and the two-step
// order/capture flow for redirect wallets.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	gw "github.com/tbourn/go-donation-backend/internal/payments"
)

// CardIntentRequest asks the card processor to prepare a charge.
type CardIntentRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required" example:"25.00"`
	Currency string          `json:"currency,omitempty" example:"USD"`
}

// RedirectOrderRequest opens a wallet order for the given amount.
type RedirectOrderRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required" example:"25.00"`
	Currency string          `json:"currency,omitempty" example:"USD"`
}

// CreateCardIntent godoc
// @ID          createCardIntent
// @Summary     Prepare a card charge
// @Description Registers the charge with the card processor and returns the client secret used to confirm it in the browser.
// @Tags        Gateway
// @Accept      json
// @Produce     json
// @Param       body body handlers.CardIntentRequest true "Charge"
// @Success     200  {object} payments.CardIntent
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     502  {object} handlers.ErrorResponse "Processor unavailable"
// @Router      /payments/card/intent [post]
func (h *Handlers) CreateCardIntent(c *gin.Context) {
	var req CardIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "amount is required")
		return
	}
	if !req.Amount.IsPositive() {
		fail(c, http.StatusBadRequest, ErrCodeInvalidAmount, "amount must be positive")
		return
	}

	cur := strings.ToUpper(strings.TrimSpace(req.Currency))
	if cur == "" {
		cur = h.currency
	}

	intent, err := h.charger.CreateIntent(c.Request.Context(), req.Amount, cur)
	if err != nil {
		fail(c, http.StatusBadGateway, ErrCodeChargeFailed, "card processor rejected the charge")
		return
	}
	ok(c, http.StatusOK, intent)
}

// CreateRedirectOrder godoc
// @ID          createRedirectOrder
// @Summary     Open a redirect wallet order
// @Tags        Gateway
// @Accept      json
// @Produce     json
// @Param       body body handlers.RedirectOrderRequest true "Order"
// @Success     200  {object} payments.RedirectOrder
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     502  {object} handlers.ErrorResponse "Processor unavailable"
// @Router      /payments/redirect/order [post]
func (h *Handlers) CreateRedirectOrder(c *gin.Context) {
	var req RedirectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "amount is required")
		return
	}
	if !req.Amount.IsPositive() {
		fail(c, http.StatusBadRequest, ErrCodeInvalidAmount, "amount must be positive")
		return
	}

	cur := strings.ToUpper(strings.TrimSpace(req.Currency))
	if cur == "" {
		cur = h.currency
	}

	order, err := h.redirect.CreateOrder(c.Request.Context(), req.Amount, cur)
	if err != nil {
		fail(c, http.StatusBadGateway, ErrCodeChargeFailed, "wallet processor rejected the order")
		return
	}
	ok(c, http.StatusOK, order)
}

// CaptureRedirectOrder godoc
// @ID          captureRedirectOrder
// @Summary     Capture an approved redirect order
// @Tags        Gateway
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200  {object} payments.RedirectCapture
// @Failure     404  {object} handlers.ErrorResponse "Unknown order"
// @Failure     502  {object} handlers.ErrorResponse "Processor unavailable"
// @Router      /payments/redirect/order/{id}/capture [post]
func (h *Handlers) CaptureRedirectOrder(c *gin.Context) {
	capture, err := h.redirect.CaptureOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == gw.ErrUnknownOrder {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "unknown order")
			return
		}
		fail(c, http.StatusBadGateway, ErrCodeChargeFailed, "wallet processor failed to capture the order")
		return
	}
	ok(c, http.StatusOK, capture)
}
