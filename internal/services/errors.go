// Package services defines the business logic for authentication, donations,
// manual payment verification, and contact messages. This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Access gate errors.
var (
	// ErrUnauthenticated indicates a missing, unknown, or expired bearer
	// token, or a session whose user no longer exists.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden indicates an authenticated user whose role is not in the
	// required role set for the operation.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrInvalidCredentials is returned on login when the username is
	// unknown or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPortalMismatch is returned on login when a portal was requested
	// and the user's role does not grant access to it.
	ErrPortalMismatch = errors.New("portal access denied")

	// ErrDuplicateUsername is returned when creating a user whose username
	// is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// Donation errors.
var (
	// ErrDonationNotFound indicates that the requested donation does not exist.
	ErrDonationNotFound = errors.New("donation not found")

	// ErrInvalidAmount is returned when a submitted amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidCurrency is returned when the currency is not a valid
	// ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidMethod is returned when the payment method tag is outside
	// {card, redirect, manual}.
	ErrInvalidMethod = errors.New("invalid payment method")

	// ErrInvalidStatus is returned when a donation status is outside
	// {pending, completed, failed}.
	ErrInvalidStatus = errors.New("invalid donation status")

	// ErrInvalidDonationType is returned when the donation type is outside
	// {one-time, monthly}.
	ErrInvalidDonationType = errors.New("invalid donation type")
)

// Manual payment verification errors.
var (
	// ErrPaymentNotFound indicates that the requested manual payment does
	// not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrMissingReference is returned when a manual payment is submitted
	// without a reference number.
	ErrMissingReference = errors.New("reference number is required")

	// ErrDuplicateReference is returned when a manual payment reference
	// number has already been submitted. This is the idempotency guard
	// against double-reporting the same transfer.
	ErrDuplicateReference = errors.New("reference number already submitted")

	// ErrAlreadyFinalized is returned when verifying a payment that has
	// already left the pending state. Verified and rejected are terminal.
	ErrAlreadyFinalized = errors.New("payment already finalized")

	// ErrInvalidOutcome is returned when a verification outcome is outside
	// {verified, rejected}.
	ErrInvalidOutcome = errors.New("outcome must be verified or rejected")
)

// Contact message errors.
var (
	// ErrContactNotFound indicates that the requested contact message does
	// not exist.
	ErrContactNotFound = errors.New("contact message not found")

	// ErrInvalidContactStatus is returned when a contact message status is
	// outside {unread, read, responded}.
	ErrInvalidContactStatus = errors.New("invalid contact message status")
)
