// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP responses
// (via the `fail()` helper in this package). These codes provide clients with a stable,
// machine-readable error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase, snake_case, and domain-agnostic unless explicitly noted.
//   - Generic codes (e.g., unauthorized, not_found, internal_error) mirror common
//     HTTP status semantics to aid interoperability.
//   - Domain-specific codes (e.g., duplicate_reference, already_finalized) are
//     reserved for business logic errors that cannot be conveyed by status alone.
//   - All error responses must include both an HTTP status and one of these codes.
//
// Usage:
//   - Handlers select the most specific matching code and pass it to `fail()` along
//     with the corresponding HTTP status and message.
//   - Clients are expected to branch on these codes for programmatic error handling.
//
// Example response:
//   {
//     "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//     "code": "duplicate_reference",
//     "message": "reference number already submitted"
//   }

package handlers

const (
	ErrCodeUnauthorized = "unauthorized"
	// "forbidden" and "rate_limited" are emitted by the auth and rate-limit
	// middleware, which write their envelopes inline.
	ErrCodeNotFound = "not_found"
	ErrCodeInternal = "internal_error"

	// Domain-specific:
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodePortalMismatch     = "portal_mismatch"
	ErrCodeValidation         = "validation_error"
	ErrCodeInvalidAmount      = "invalid_amount"
	ErrCodeDuplicateReference = "duplicate_reference"
	ErrCodeAlreadyFinalized   = "already_finalized"
	ErrCodeChargeFailed       = "charge_failed"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)
