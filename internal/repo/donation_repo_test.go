package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-donation-backend/internal/domain"
)

func newMemDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func mkDonation(t *testing.T, db *gorm.DB, amount string, createdAt time.Time) *domain.Donation {
	t.Helper()
	d := &domain.Donation{
		Amount:        decimal.RequireFromString(amount),
		Currency:      "USD",
		PaymentMethod: domain.MethodManual,
		Status:        domain.DonationPending,
		DonationType:  domain.DonationOneTime,
	}
	out, err := CreateDonation(context.Background(), db, d)
	if err != nil {
		t.Fatalf("create donation: %v", err)
	}
	if !createdAt.IsZero() {
		if err := db.Model(&domain.Donation{}).Where("id = ?", out.ID).
			Update("created_at", createdAt).Error; err != nil {
			t.Fatalf("backdate donation: %v", err)
		}
		out.CreatedAt = createdAt
	}
	return out
}

func TestCreateDonation_AssignsIDAndTimestamp(t *testing.T) {
	db := newMemDB(t)

	d := mkDonation(t, db, "25.50", time.Time{})
	if d.ID == "" {
		t.Fatal("expected generated id")
	}
	if d.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	got, err := GetDonation(context.Background(), db, d.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Amount.Equal(decimal.RequireFromString("25.50")) {
		t.Fatalf("amount mismatch: %s", got.Amount)
	}
}

func TestGetDonation_NotFound(t *testing.T) {
	db := newMemDB(t)

	_, err := GetDonation(context.Background(), db, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateDonation_MergesFieldsAndRefetches(t *testing.T) {
	db := newMemDB(t)
	d := mkDonation(t, db, "10", time.Time{})

	now := time.Now().UTC()
	got, err := UpdateDonation(context.Background(), db, d.ID, map[string]any{
		"status":      domain.DonationCompleted,
		"verified_at": now,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != domain.DonationCompleted {
		t.Fatalf("expected completed, got %q", got.Status)
	}
	if got.VerifiedAt == nil {
		t.Fatal("expected verified_at to be set")
	}
	// Untouched columns survive the partial update.
	if !got.Amount.Equal(d.Amount) || got.Currency != "USD" {
		t.Fatalf("partial update clobbered other fields: %+v", got)
	}
}

func TestUpdateDonation_NotFound(t *testing.T) {
	db := newMemDB(t)

	_, err := UpdateDonation(context.Background(), db, "missing", map[string]any{"status": domain.DonationFailed})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListDonations_NewestFirst_WithDefaults(t *testing.T) {
	db := newMemDB(t)
	base := time.Now().UTC().Add(-time.Hour)

	old := mkDonation(t, db, "1", base)
	mid := mkDonation(t, db, "2", base.Add(10*time.Minute))
	newest := mkDonation(t, db, "3", base.Add(20*time.Minute))

	got, err := ListDonations(context.Background(), db, 0, -1) // defaults kick in
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3, got %d", len(got))
	}
	if got[0].ID != newest.ID || got[1].ID != mid.ID || got[2].ID != old.ID {
		t.Fatalf("wrong order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}

	page, err := ListDonations(context.Background(), db, 2, 1)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page) != 2 || page[0].ID != mid.ID {
		t.Fatalf("expected page starting at %s, got %+v", mid.ID, page)
	}
}

func TestDonationsByStatus_AndCount(t *testing.T) {
	db := newMemDB(t)
	ctx := context.Background()

	d1 := mkDonation(t, db, "5", time.Time{})
	mkDonation(t, db, "7", time.Time{})
	if _, err := UpdateDonation(ctx, db, d1.ID, map[string]any{"status": domain.DonationCompleted}); err != nil {
		t.Fatalf("update: %v", err)
	}

	completed, err := DonationsByStatus(ctx, db, domain.DonationCompleted)
	if err != nil {
		t.Fatalf("by status: %v", err)
	}
	if len(completed) != 1 || completed[0].ID != d1.ID {
		t.Fatalf("expected only %s, got %+v", d1.ID, completed)
	}

	n, err := CountDonations(ctx, db)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}
