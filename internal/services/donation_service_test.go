package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tbourn/go-donation-backend/internal/domain"
)

func strptr(s string) *string { return &s }

func TestDonation_Submit_Validation(t *testing.T) {
	svc := &DonationService{DB: newTestDB(t)}
	ctx := context.Background()

	cases := []struct {
		name string
		in   SubmitDonationInput
		want error
	}{
		{"zero amount", SubmitDonationInput{Amount: decimal.Zero, PaymentMethod: domain.MethodCard}, ErrInvalidAmount},
		{"negative amount", SubmitDonationInput{Amount: decimal.NewFromInt(-1), PaymentMethod: domain.MethodCard}, ErrInvalidAmount},
		{"bad currency", SubmitDonationInput{Amount: decimal.NewFromInt(10), Currency: "XXQ", PaymentMethod: domain.MethodCard}, ErrInvalidCurrency},
		{"bad method", SubmitDonationInput{Amount: decimal.NewFromInt(10), PaymentMethod: "cheque"}, ErrInvalidMethod},
		{"bad status", SubmitDonationInput{Amount: decimal.NewFromInt(10), PaymentMethod: domain.MethodCard, Status: "archived"}, ErrInvalidStatus},
		{"bad type", SubmitDonationInput{Amount: decimal.NewFromInt(10), PaymentMethod: domain.MethodCard, DonationType: "weekly"}, ErrInvalidDonationType},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(ctx, tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestDonation_Submit_Defaults(t *testing.T) {
	svc := &DonationService{DB: newTestDB(t)}

	d, err := svc.Submit(context.Background(), SubmitDonationInput{
		Amount:        decimal.RequireFromString("25.50"),
		Currency:      " usd ",
		PaymentMethod: domain.MethodCard,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if d.Currency != "USD" {
		t.Fatalf("expected USD, got %q", d.Currency)
	}
	if d.Status != domain.DonationPending {
		t.Fatalf("expected pending default, got %q", d.Status)
	}
	if d.DonationType != domain.DonationOneTime {
		t.Fatalf("expected one-time default, got %q", d.DonationType)
	}
	if d.ID == "" {
		t.Fatal("expected a generated id")
	}
	if !d.Amount.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("amount must survive exactly, got %s", d.Amount)
	}
}

func TestDonation_Submit_AnonymousScrubsIdentity(t *testing.T) {
	svc := &DonationService{DB: newTestDB(t)}

	d, err := svc.Submit(context.Background(), SubmitDonationInput{
		DonorName:     strptr("Maria Santos"),
		DonorEmail:    strptr("maria@example.com"),
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: domain.MethodRedirect,
		IsAnonymous:   true,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if d.DonorName != nil || d.DonorEmail != nil {
		t.Fatalf("anonymous donation kept identity: name=%v email=%v", d.DonorName, d.DonorEmail)
	}
	if !d.IsAnonymous {
		t.Fatal("expected is_anonymous to persist")
	}
}

func TestDonation_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := &DonationService{DB: db}
	d := seedDonation(t, db, "40")

	if _, err := svc.UpdateStatus(context.Background(), d.ID, "archived", nil); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.DonationFailed, nil); !errors.Is(err, ErrDonationNotFound) {
		t.Fatalf("expected ErrDonationNotFound, got %v", err)
	}

	got, err := svc.UpdateStatus(context.Background(), d.ID, domain.DonationFailed, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != domain.DonationFailed {
		t.Fatalf("expected failed, got %q", got.Status)
	}
}

func TestDonation_AdminStats_EmptyState(t *testing.T) {
	svc := &DonationService{DB: newTestDB(t)}

	stats, err := svc.AdminStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !stats.TotalDonations.IsZero() || stats.DonationCount != 0 ||
		stats.PendingMessages != 0 || stats.PendingManualPayments != 0 {
		t.Fatalf("expected zeroed stats, got %+v", stats)
	}
}

func TestDonation_AdminStats_CountsAllStatusesAndPendingWork(t *testing.T) {
	db := newTestDB(t)
	donSvc := &DonationService{DB: db}
	paySvc := &PaymentService{DB: db}
	ctx := context.Background()

	d1 := seedDonation(t, db, "10.10")
	seedDonation(t, db, "20.20")
	if _, err := donSvc.UpdateStatus(ctx, d1.ID, domain.DonationFailed, nil); err != nil {
		t.Fatalf("fail d1: %v", err)
	}
	if _, err := paySvc.Submit(ctx, nil, "STATS-REF", decimal.NewFromInt(5), nil); err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	contactSvc := &ContactService{DB: db}
	if _, err := contactSvc.Create(ctx, ContactInput{
		FirstName: "Maria", LastName: "Santos", Email: "m@example.com",
		Subject: "hi", InquiryType: "general", Message: "hello",
	}); err != nil {
		t.Fatalf("contact: %v", err)
	}

	stats, err := donSvc.AdminStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !stats.TotalDonations.Equal(decimal.RequireFromString("30.30")) {
		t.Fatalf("expected total 30.30 across all statuses, got %s", stats.TotalDonations)
	}
	if stats.DonationCount != 2 {
		t.Fatalf("expected 2 donations, got %d", stats.DonationCount)
	}
	if stats.PendingMessages != 1 || stats.PendingManualPayments != 1 {
		t.Fatalf("expected 1 unread message and 1 pending payment, got %+v", stats)
	}
}

func TestDonation_OwnerStats_CompletedOnly(t *testing.T) {
	db := newTestDB(t)
	svc := &DonationService{DB: db}
	ctx := context.Background()

	submit := func(amount, method string, email *string, status string) {
		t.Helper()
		if _, err := svc.Submit(ctx, SubmitDonationInput{
			DonorEmail:    email,
			Amount:        decimal.RequireFromString(amount),
			PaymentMethod: method,
			Status:        status,
		}); err != nil {
			t.Fatalf("submit %s: %v", amount, err)
		}
	}

	submit("100.00", domain.MethodCard, strptr("a@example.com"), domain.DonationCompleted)
	submit("50.50", domain.MethodManual, strptr("b@example.com"), domain.DonationCompleted)
	submit("25.25", domain.MethodCard, strptr("a@example.com"), domain.DonationCompleted) // repeat donor
	submit("999.99", domain.MethodRedirect, strptr("c@example.com"), domain.DonationPending)

	stats, err := svc.OwnerStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("175.75")) {
		t.Fatalf("expected revenue 175.75, got %s", stats.TotalRevenue)
	}
	// Everything was created just now, so it all lands in the current month.
	if !stats.MonthlyRevenue.Equal(stats.TotalRevenue) {
		t.Fatalf("expected monthly == total, got %s vs %s", stats.MonthlyRevenue, stats.TotalRevenue)
	}
	if stats.ActiveDonors != 2 {
		t.Fatalf("expected 2 distinct donors, got %d", stats.ActiveDonors)
	}
	if !stats.PaymentMethods[domain.MethodCard].Equal(decimal.RequireFromString("125.25")) {
		t.Fatalf("expected card revenue 125.25, got %s", stats.PaymentMethods[domain.MethodCard])
	}
	if !stats.PaymentMethods[domain.MethodManual].Equal(decimal.RequireFromString("50.50")) {
		t.Fatalf("expected manual revenue 50.50, got %s", stats.PaymentMethods[domain.MethodManual])
	}
	if _, ok := stats.PaymentMethods[domain.MethodRedirect]; ok {
		t.Fatal("pending donation must not contribute to the breakdown")
	}
}
