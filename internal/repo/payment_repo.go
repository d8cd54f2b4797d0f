// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ManualPayment model.
//
// The manual_payments table carries a unique index on reference_number, so
// two concurrent inserts of the same reference cannot both succeed: the
// loser fails with the driver's unique-constraint error, which the payment
// service maps to its duplicate-reference sentinel.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
)

// CreatePayment inserts p, assigning a UUID id and UTC CreatedAt. A
// duplicate reference number fails the insert via the unique index.
func CreatePayment(ctx context.Context, db *gorm.DB, p *domain.ManualPayment) (*domain.ManualPayment, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetPayment fetches a single manual payment by id, or ErrNotFound if missing.
func GetPayment(ctx context.Context, db *gorm.DB, id string) (*domain.ManualPayment, error) {
	var p domain.ManualPayment
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// PaymentByReference fetches a manual payment by its reference number
// (case-sensitive exact match). Returns ErrNotFound if no payment carries
// that reference.
func PaymentByReference(ctx context.Context, db *gorm.DB, reference string) (*domain.ManualPayment, error) {
	var p domain.ManualPayment
	if err := db.WithContext(ctx).Where("reference_number = ?", reference).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePayment merges fields into the payment identified by id and returns
// the updated row. Unspecified fields retain their prior value. Returns
// ErrNotFound when no row matches id.
func UpdatePayment(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.ManualPayment, error) {
	res := db.WithContext(ctx).
		Model(&domain.ManualPayment{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetPayment(ctx, db, id)
}

// PendingPayments returns all manual payments still awaiting verification,
// ordered by creation time descending. This is the admin/owner work queue.
func PendingPayments(ctx context.Context, db *gorm.DB) ([]domain.ManualPayment, error) {
	var out []domain.ManualPayment
	err := db.WithContext(ctx).
		Where("status = ?", domain.PaymentPending).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountPendingPayments returns the size of the verification work queue.
func CountPendingPayments(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ManualPayment{}).
		Where("status = ?", domain.PaymentPending).
		Count(&total).Error
	return total, err
}
