// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ContactMessage model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
)

// CreateContactMessage inserts m, assigning a UUID id and UTC CreatedAt.
func CreateContactMessage(ctx context.Context, db *gorm.DB, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ListContactMessages returns messages ordered by creation time descending.
// limit values <= 0 fall back to 50 and negative offsets to 0.
func ListContactMessages(ctx context.Context, db *gorm.DB, limit, offset int) ([]domain.ContactMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var out []domain.ContactMessage
	err := db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

// UpdateContactMessage merges fields into the message identified by id and
// returns the updated row, or ErrNotFound when id is absent.
func UpdateContactMessage(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.ContactMessage, error) {
	res := db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var m domain.ContactMessage
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UnreadContactCount returns the number of messages still marked unread.
func UnreadContactCount(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("status = ?", domain.ContactUnread).
		Count(&total).Error
	return total, err
}
