// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Session
// model. Expiry semantics (treating stale sessions as absent and removing
// them) live in the auth service; this layer only stores and fetches rows.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
)

// CreateSession inserts a new Session row for userID with the given absolute
// expiry. The session id is a randomly generated UUID and doubles as the
// bearer token handed to the client. data is an optional opaque payload.
func CreateSession(ctx context.Context, db *gorm.DB, userID string, expiresAt time.Time, data *string) (*domain.Session, error) {
	s := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: expiresAt,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession fetches a session by id without interpreting its expiry.
// Returns ErrNotFound if missing.
func GetSession(ctx context.Context, db *gorm.DB, id string) (*domain.Session, error) {
	var s domain.Session
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes a session by id. Deleting an absent session is not
// an error; logout is idempotent.
func DeleteSession(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Session{}).Error
}

// CountSessions returns the number of stored sessions. Used by the auth
// service tests to observe lazy expiry cleanup.
func CountSessions(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Session{}).Count(&total).Error
	return total, err
}
