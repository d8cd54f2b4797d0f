// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Donation
// model.
//
// Error semantics:
//   - When a donation is not found, functions return gorm.ErrRecordNotFound
//     (aliased as ErrNotFound in user_repo.go).
//   - On DB errors the raw gorm error is propagated.
//
// Functions:
//
//   - CreateDonation(ctx, db, d) -> *domain.Donation, error
//     Inserts a new Donation row, assigning UUID primary key and UTC
//     creation timestamp.
//
//   - GetDonation(ctx, db, id) -> *domain.Donation, error
//     Fetches a single donation, or ErrNotFound if missing.
//
//   - UpdateDonation(ctx, db, id, fields) -> *domain.Donation, error
//     Field-level merge: only the supplied columns are written, everything
//     else retains its prior value. Returns ErrNotFound when id is absent.
//
//   - ListDonations(ctx, db, limit, offset) -> []domain.Donation, error
//     Recency-bounded admin view, ordered by creation time descending.
//
//   - DonationsByStatus(ctx, db, status) -> []domain.Donation, error
//     Linear filter by status; acceptable at donation-site data volume.
//
// This repository is designed to be wrapped by a higher-level service
// (see services.DonationService) which enforces business rules such as
// amount validation and anonymity scrubbing.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
)

// CreateDonation inserts d, assigning a UUID id and UTC CreatedAt.
// The caller supplies all domain fields; defaults for currency, status, and
// donation type are expected to be resolved before this point.
func CreateDonation(ctx context.Context, db *gorm.DB, d *domain.Donation) (*domain.Donation, error) {
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

// GetDonation fetches a single donation by id, or ErrNotFound if missing.
func GetDonation(ctx context.Context, db *gorm.DB, id string) (*domain.Donation, error) {
	var d domain.Donation
	if err := db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDonation merges fields into the donation identified by id and
// returns the updated row. Unspecified fields retain their prior value.
// Returns ErrNotFound when no row matches id.
func UpdateDonation(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.Donation, error) {
	res := db.WithContext(ctx).
		Model(&domain.Donation{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetDonation(ctx, db, id)
}

// ListDonations returns donations ordered by creation time descending.
// limit values <= 0 fall back to 50 and negative offsets to 0, matching the
// admin view defaults.
func ListDonations(ctx context.Context, db *gorm.DB, limit, offset int) ([]domain.Donation, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var out []domain.Donation
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

// AllDonations returns every donation, newest first. Dashboard statistics
// sum amounts in Go with decimal arithmetic, so they need full rows rather
// than SQL aggregates over a decimal-typed column.
func AllDonations(ctx context.Context, db *gorm.DB) ([]domain.Donation, error) {
	var out []domain.Donation
	err := db.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

// DonationsByStatus returns all donations with the given status, newest first.
func DonationsByStatus(ctx context.Context, db *gorm.DB, status string) ([]domain.Donation, error) {
	var out []domain.Donation
	err := db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountDonations returns the total number of donations.
func CountDonations(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Donation{}).Count(&total).Error
	return total, err
}
