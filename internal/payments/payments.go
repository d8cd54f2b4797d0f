// Package payments defines the external payment collaborators consumed by
// the donation flow. The application never validates card data or talks to
// a wallet network itself: a collaborator produces an opaque reference
// (and, for redirect flows, a confirmation) which is handed to the donation
// service as the payment reference.
package payments

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnknownOrder is returned when capturing a redirect order that was
// never created or has already been captured.
var ErrUnknownOrder = errors.New("unknown redirect order")

// CardIntent is the result of preparing a card charge: a reference for the
// donation record and a client secret the browser uses to confirm the
// charge with the processor.
type CardIntent struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"client_secret"`
}

// CardCharger prepares card charges with the card processor.
type CardCharger interface {
	// CreateIntent registers a charge of amount/currency with the processor
	// and returns the confirmation token pair. The charge is confirmed
	// client-side; the donation is recorded as completed only after the
	// processor reports success.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*CardIntent, error)
}

// RedirectOrder is a wallet-style order awaiting approval at the
// processor's site.
type RedirectOrder struct {
	OrderID    string `json:"order_id"`
	ApproveURL string `json:"approve_url,omitempty"`
}

// RedirectCapture is the outcome of capturing an approved redirect order.
type RedirectCapture struct {
	Reference string `json:"reference"`
	Confirmed bool   `json:"confirmed"`
}

// RedirectProcessor drives the two-step redirect payment flow: create an
// order, send the donor to the processor, then capture the charge after
// approval.
type RedirectProcessor interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency string) (*RedirectOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*RedirectCapture, error)
}
