// Stripe-backed CardCharger.
//
// Amounts are converted to the processor's minor units (cents) with decimal
// arithmetic before they leave this package; the processor never sees a
// binary float.
package payments

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// minorUnits is the decimal shift between a major-unit amount and the
// processor's integer amount (e.g. 12.50 USD -> 1250).
var minorUnits = decimal.NewFromInt(100)

// StripeCharger implements CardCharger against the Stripe PaymentIntents API.
type StripeCharger struct {
	api *client.API
}

// NewStripeCharger constructs a charger with the given secret key.
func NewStripeCharger(secretKey string) *StripeCharger {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCharger{api: api}
}

// CreateIntent registers a PaymentIntent with automatic payment methods and
// returns its id as the payment reference together with the client secret
// the browser needs to confirm the charge.
func (s *StripeCharger) CreateIntent(ctx context.Context, amount decimal.Decimal, cur string) (*CardIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount.Mul(minorUnits).Round(0).IntPart()),
		Currency: stripe.String(strings.ToLower(cur)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &CardIntent{Reference: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
