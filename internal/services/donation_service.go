// Package services – DonationService
//
// This file implements the DonationService, which creates donation records
// from any payment channel, applies admin status corrections, and computes
// the aggregate figures behind the admin and owner dashboards. All currency
// amounts are handled with exact decimal arithmetic; binary floats never
// touch a monetary value.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/repo"
)

// SubmitDonationInput carries the fields accepted from any submission
// channel. Donor identity is optional and discarded entirely when the
// donation is anonymous.
type SubmitDonationInput struct {
	DonorName        *string
	DonorEmail       *string
	Amount           decimal.Decimal
	Currency         string // defaults to USD
	PaymentMethod    string // card, redirect, or manual
	PaymentReference *string
	Status           string // defaults to pending; synchronous channels may pass completed
	IsAnonymous      bool
	DonationType     string // defaults to one-time
}

// AdminStats are the figures shown on the admin dashboard. Totals cover all
// donations regardless of status.
type AdminStats struct {
	TotalDonations        decimal.Decimal `json:"total_donations"`
	DonationCount         int64           `json:"donation_count"`
	PendingMessages       int64           `json:"pending_messages"`
	PendingManualPayments int64           `json:"pending_manual_payments"`
}

// OwnerStats are the revenue figures shown on the owner dashboard. Only
// completed donations count toward revenue.
type OwnerStats struct {
	TotalRevenue   decimal.Decimal            `json:"total_revenue"`
	MonthlyRevenue decimal.Decimal            `json:"monthly_revenue"`
	ActiveDonors   int                        `json:"active_donors"`
	PaymentMethods map[string]decimal.Decimal `json:"payment_methods"`
	GrowthRate     float64                    `json:"growth_rate"`
}

// DonationService provides donation-level operations: channel-agnostic
// submission, status transitions, listing, and dashboard statistics.
type DonationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Submit validates and stores a donation.
//
// Validation:
//   - Amount must be strictly positive (ErrInvalidAmount).
//   - Currency defaults to USD and must be a valid ISO 4217 code
//     (ErrInvalidCurrency); it is stored uppercased.
//   - PaymentMethod must be card, redirect, or manual (ErrInvalidMethod).
//   - Status defaults to pending. Channels that confirm synchronously may
//     pass completed; anything outside {pending, completed, failed} is
//     rejected with ErrInvalidStatus.
//   - DonationType defaults to one-time (ErrInvalidDonationType otherwise).
//
// When IsAnonymous is set, donor name and email are discarded regardless of
// what was supplied; an anonymous donation never retains donor identity.
func (s *DonationService) Submit(ctx context.Context, in SubmitDonationInput) (*domain.Donation, error) {
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	cur := strings.ToUpper(strings.TrimSpace(in.Currency))
	if cur == "" {
		cur = "USD"
	}
	if _, err := currency.ParseISO(cur); err != nil {
		return nil, ErrInvalidCurrency
	}

	if !domain.ValidPaymentMethod(in.PaymentMethod) {
		return nil, ErrInvalidMethod
	}

	status := in.Status
	if status == "" {
		status = domain.DonationPending
	}
	if !domain.ValidDonationStatus(status) {
		return nil, ErrInvalidStatus
	}

	donationType := in.DonationType
	if donationType == "" {
		donationType = domain.DonationOneTime
	}
	if donationType != domain.DonationOneTime && donationType != domain.DonationMonthly {
		return nil, ErrInvalidDonationType
	}

	d := &domain.Donation{
		DonorName:        in.DonorName,
		DonorEmail:       in.DonorEmail,
		Amount:           in.Amount,
		Currency:         cur,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
		Status:           status,
		IsAnonymous:      in.IsAnonymous,
		DonationType:     donationType,
	}
	if in.IsAnonymous {
		d.DonorName = nil
		d.DonorEmail = nil
	}

	out, err := repo.CreateDonation(ctx, s.DB, d)
	if err != nil {
		return nil, err
	}
	donationsSubmitted.WithLabelValues(out.PaymentMethod).Inc()
	return out, nil
}

// Get fetches a donation by id, or ErrDonationNotFound.
func (s *DonationService) Get(ctx context.Context, id string) (*domain.Donation, error) {
	d, err := repo.GetDonation(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return d, nil
}

// List returns donations newest first, bounded by limit/offset
// (defaults 50/0).
func (s *DonationService) List(ctx context.Context, limit, offset int) ([]domain.Donation, error) {
	return repo.ListDonations(ctx, s.DB, limit, offset)
}

// UpdateStatus moves a donation to the given status. This is the admin
// correction path; the manual payment verification flow is the only caller
// that cascades pending → completed automatically. verifiedAt, when
// non-nil, records the verification instant alongside the transition.
func (s *DonationService) UpdateStatus(ctx context.Context, id, status string, verifiedAt *time.Time) (*domain.Donation, error) {
	if !domain.ValidDonationStatus(status) {
		return nil, ErrInvalidStatus
	}
	fields := map[string]any{"status": status}
	if verifiedAt != nil {
		fields["verified_at"] = verifiedAt.UTC()
	}
	d, err := repo.UpdateDonation(ctx, s.DB, id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return d, nil
}

// AdminStats sums every donation regardless of status with exact decimal
// arithmetic and counts the outstanding human work: unread contact messages
// and pending manual payments.
func (s *DonationService) AdminStats(ctx context.Context) (*AdminStats, error) {
	donations, err := repo.AllDonations(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, d := range donations {
		total = total.Add(d.Amount)
	}

	unread, err := repo.UnreadContactCount(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	pending, err := repo.CountPendingPayments(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalDonations:        total,
		DonationCount:         int64(len(donations)),
		PendingMessages:       unread,
		PendingManualPayments: pending,
	}, nil
}

// OwnerStats restricts to completed donations and computes total revenue,
// current-calendar-month revenue, the number of distinct non-null donor
// emails, and a per-method revenue breakdown.
func (s *DonationService) OwnerStats(ctx context.Context) (*OwnerStats, error) {
	completed, err := repo.DonationsByStatus(ctx, s.DB, domain.DonationCompleted)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	total := decimal.Zero
	monthly := decimal.Zero
	methods := make(map[string]decimal.Decimal)
	donors := make(map[string]struct{})

	for _, d := range completed {
		total = total.Add(d.Amount)
		if d.CreatedAt.Month() == now.Month() && d.CreatedAt.Year() == now.Year() {
			monthly = monthly.Add(d.Amount)
		}
		methods[d.PaymentMethod] = methods[d.PaymentMethod].Add(d.Amount)
		if d.DonorEmail != nil && *d.DonorEmail != "" {
			donors[*d.DonorEmail] = struct{}{}
		}
	}

	return &OwnerStats{
		TotalRevenue:   total,
		MonthlyRevenue: monthly,
		ActiveDonors:   len(donors),
		PaymentMethods: methods,
		// TODO: derive from prior-month revenue once enough history accrues;
		// the dashboard currently shows the launch-campaign placeholder.
		GrowthRate: 15.3,
	}, nil
}
