// Package services – PaymentService
//
// This file implements the PaymentService, the reconciliation core for the
// manual payment channel. A donor reports a transfer (reference number,
// amount, sender); duplicate references are rejected so the same transfer
// cannot be reported twice. A privileged actor later verifies or rejects
// the report. Verification is the only path that moves a manual payment out
// of pending, and a verified outcome cascades into the linked donation's
// status inside the same transaction.
//
// Concurrency & atomicity:
//   - The duplicate-reference check and insert run inside one transaction,
//     backed by a unique index on reference_number, so two concurrent
//     submissions of the same reference cannot both succeed.
//   - Verify applies the donation cascade first and the payment flip second
//     within a single transaction; a failure on either side rolls back both
//     writes, so observers never see a verified payment pointing at a
//     pending donation.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/repo"
)

// PaymentService implements the manual payment verification state machine:
// pending → verified | rejected, both terminal.
type PaymentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Submit records a self-reported transfer awaiting verification.
//
// Semantics and validation:
//   - reference must be non-empty (ErrMissingReference) and is matched
//     case-sensitively against existing payments; a duplicate yields
//     ErrDuplicateReference.
//   - amount must be strictly positive (ErrInvalidAmount).
//   - donationID, when non-nil, must name an existing donation
//     (ErrDonationNotFound); the payment is linked to it.
//
// Submission is open to unauthenticated callers: the donor reports their
// own transfer.
func (s *PaymentService) Submit(ctx context.Context, donationID *string, reference string, amount decimal.Decimal, sender *string) (*domain.ManualPayment, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrMissingReference
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var out *domain.ManualPayment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if donationID != nil {
			if _, err := repo.GetDonation(ctx, tx, *donationID); err != nil {
				if errors.Is(err, repo.ErrNotFound) {
					return ErrDonationNotFound
				}
				return err
			}
		}

		// Check-then-insert under the transaction; the unique index on
		// reference_number fails the loser of a concurrent race.
		if _, err := repo.PaymentByReference(ctx, tx, reference); err == nil {
			return ErrDuplicateReference
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		p := &domain.ManualPayment{
			DonationID:      donationID,
			ReferenceNumber: reference,
			Amount:          amount,
			SenderNumber:    sender,
			Status:          domain.PaymentPending,
		}
		created, err := repo.CreatePayment(ctx, tx, p)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrDuplicateReference
			}
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	paymentsSubmitted.Inc()
	return out, nil
}

// Verify finalizes a pending payment as verified or rejected on behalf of
// actorID.
//
// Semantics:
//   - outcome must be "verified" or "rejected" (ErrInvalidOutcome).
//   - A missing payment yields ErrPaymentNotFound; a payment that already
//     left pending yields ErrAlreadyFinalized (no re-verification, no
//     flip-flopping).
//   - On success the payment records outcome, verifiedBy = actorID, and
//     verifiedAt = now.
//   - Cascade: iff outcome is verified and the payment links a donation,
//     that donation is advanced to completed with its own verifiedAt, in
//     the same transaction. A rejected outcome leaves the donation
//     untouched: rejection means the proof was invalid, not that the
//     intent to donate failed, so the donor can resubmit under a new
//     reference.
func (s *PaymentService) Verify(ctx context.Context, paymentID, outcome, actorID string) (*domain.ManualPayment, error) {
	if outcome != domain.PaymentVerified && outcome != domain.PaymentRejected {
		return nil, ErrInvalidOutcome
	}

	var out *domain.ManualPayment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := repo.GetPayment(ctx, tx, paymentID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}
		if !p.Pending() {
			return ErrAlreadyFinalized
		}

		now := time.Now().UTC()

		// Donation first, payment second: if the cascade cannot be applied
		// the whole transaction aborts and the payment stays pending.
		if outcome == domain.PaymentVerified && p.DonationID != nil {
			if _, err := repo.UpdateDonation(ctx, tx, *p.DonationID, map[string]any{
				"status":      domain.DonationCompleted,
				"verified_at": now,
			}); err != nil {
				return fmt.Errorf("cascade donation update: %w", err)
			}
		}

		updated, err := repo.UpdatePayment(ctx, tx, paymentID, map[string]any{
			"status":      outcome,
			"verified_by": actorID,
			"verified_at": now,
		})
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	paymentVerifications.WithLabelValues(outcome).Inc()
	return out, nil
}

// PendingQueue returns the admin/owner work queue: all payments still
// pending, newest first.
func (s *PaymentService) PendingQueue(ctx context.Context) ([]domain.ManualPayment, error) {
	return repo.PendingPayments(ctx, s.DB)
}

// Get fetches a manual payment by id, or ErrPaymentNotFound.
func (s *PaymentService) Get(ctx context.Context, id string) (*domain.ManualPayment, error) {
	p, err := repo.GetPayment(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
