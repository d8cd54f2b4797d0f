// Package services – ContactService
//
// This file implements the ContactService for inbound inquiries from the
// public contact form. Messages are independent of the payment flow; the
// only lifecycle is their unread → read/responded status, driven by the
// back office.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/repo"
)

// ErrInvalidContact is returned when a contact submission misses a required
// field.
var ErrInvalidContact = errors.New("missing required contact field")

// ContactInput carries the public contact form fields.
type ContactInput struct {
	FirstName        string
	LastName         string
	Email            string
	Subject          string
	InquiryType      string
	Message          string
	SubscribeUpdates bool
}

// ContactService stores and lists contact messages.
type ContactService struct {
	DB *gorm.DB
}

// Create validates and stores an inbound inquiry with status unread.
func (s *ContactService) Create(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	for _, f := range []string{in.FirstName, in.LastName, in.Email, in.Subject, in.InquiryType, in.Message} {
		if strings.TrimSpace(f) == "" {
			return nil, ErrInvalidContact
		}
	}
	m := &domain.ContactMessage{
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Email:            strings.TrimSpace(in.Email),
		Subject:          strings.TrimSpace(in.Subject),
		InquiryType:      strings.TrimSpace(in.InquiryType),
		Message:          in.Message,
		SubscribeUpdates: in.SubscribeUpdates,
		Status:           domain.ContactUnread,
	}
	return repo.CreateContactMessage(ctx, s.DB, m)
}

// List returns messages newest first, bounded by limit/offset (defaults 50/0).
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]domain.ContactMessage, error) {
	return repo.ListContactMessages(ctx, s.DB, limit, offset)
}

// UpdateStatus marks a message read or responded.
func (s *ContactService) UpdateStatus(ctx context.Context, id, status string) (*domain.ContactMessage, error) {
	if !domain.ValidContactStatus(status) {
		return nil, ErrInvalidContactStatus
	}
	m, err := repo.UpdateContactMessage(ctx, s.DB, id, map[string]any{"status": status})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return m, nil
}
