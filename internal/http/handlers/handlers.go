// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the Handlers aggregate, which bundles the application
// services and payment collaborators behind the route handlers. Handlers
// are transport-thin: they bind and validate input, delegate to services,
// and translate service errors into HTTP results.
package handlers

import (
	gw "github.com/tbourn/go-donation-backend/internal/payments"
	"github.com/tbourn/go-donation-backend/internal/services"
)

// Handlers bundles all HTTP endpoint implementations and their dependencies.
type Handlers struct {
	authSvc     *services.AuthService
	donationSvc *services.DonationService
	paymentSvc  *services.PaymentService
	contactSvc  *services.ContactService

	charger  gw.CardCharger
	redirect gw.RedirectProcessor

	currency string
}

// New constructs the handler set from its service and collaborator
// dependencies.
func New(
	auth *services.AuthService,
	donations *services.DonationService,
	payments *services.PaymentService,
	contacts *services.ContactService,
	charger gw.CardCharger,
	redirect gw.RedirectProcessor,
	defaultCurrency string,
) *Handlers {
	return &Handlers{
		authSvc:     auth,
		donationSvc: donations,
		paymentSvc:  payments,
		contactSvc:  contacts,
		charger:     charger,
		redirect:    redirect,
		currency:    defaultCurrency,
	}
}
