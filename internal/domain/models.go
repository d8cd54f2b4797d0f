// Package domain defines the persistence models for users, sessions,
// donations, manual payments, and contact messages. These types are mapped
// with GORM and form the core data layer of the donation backend.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles. A role is assigned at creation time and never edited through
// this application.
const (
	RoleGuest = "guest"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// Donation statuses. "completed" and "failed" are terminal.
const (
	DonationPending   = "pending"
	DonationCompleted = "completed"
	DonationFailed    = "failed"
)

// Payment method tags accepted on a donation.
const (
	MethodCard     = "card"
	MethodRedirect = "redirect"
	MethodManual   = "manual"
)

// Donation types.
const (
	DonationOneTime = "one-time"
	DonationMonthly = "monthly"
)

// Manual payment statuses. "verified" and "rejected" are terminal.
const (
	PaymentPending  = "pending"
	PaymentVerified = "verified"
	PaymentRejected = "rejected"
)

// Contact message statuses.
const (
	ContactUnread    = "unread"
	ContactRead      = "read"
	ContactResponded = "responded"
)

// ValidRole reports whether r is one of the known user roles.
func ValidRole(r string) bool {
	return r == RoleGuest || r == RoleAdmin || r == RoleOwner
}

// ValidDonationStatus reports whether s is an accepted donation status.
func ValidDonationStatus(s string) bool {
	return s == DonationPending || s == DonationCompleted || s == DonationFailed
}

// ValidPaymentMethod reports whether m is an accepted payment method tag.
func ValidPaymentMethod(m string) bool {
	return m == MethodCard || m == MethodRedirect || m == MethodManual
}

// ValidContactStatus reports whether s is an accepted contact message status.
func ValidContactStatus(s string) bool {
	return s == ContactUnread || s == ContactRead || s == ContactResponded
}

// User is an identity record for the admin/owner back office. Credentials
// are stored as a salted argon2id hash, never in plaintext.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Username: unique login name.
//   - PasswordHash: argon2id PHC-format hash; never serialized to JSON.
//   - Email: optional contact address.
//   - Role: one of guest, admin, owner (enforced by DB constraint).
//   - CreatedAt: timestamp managed by GORM.
type User struct {
	ID           string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username"   gorm:"type:varchar(64);not null;uniqueIndex:ux_users_username"`
	PasswordHash string    `json:"-"          gorm:"type:text;not null"`
	Email        *string   `json:"email,omitempty" gorm:"type:varchar(255)"`
	Role         string    `json:"role"       gorm:"type:varchar(16);not null;default:'guest';check:role IN ('guest','admin','owner')"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Session is proof of authentication: an opaque id handed to the client as
// a bearer token, bound to a user and an absolute expiry. Expired sessions
// are treated as absent and removed lazily on first access.
type Session struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:char(36);not null;index:idx_session_user"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Data      *string   `json:"data,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "sessions" }

// Expired reports whether the session's absolute expiry is at or before now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Donation records a single contribution made through any payment channel.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - DonorName / DonorEmail: nil when the donation is anonymous.
//   - Amount: exact decimal amount; stored as decimal(10,2), summed with
//     decimal arithmetic, never binary floats.
//   - Currency: ISO 4217 code, defaults to USD.
//   - PaymentMethod: card, redirect, or manual (enforced by DB constraint).
//   - PaymentReference: opaque channel-specific token or id.
//   - Status: pending, completed, or failed; completed/failed are terminal.
//   - IsAnonymous: donor identity scrubbed when true.
//   - DonationType: one-time or monthly.
//   - VerifiedAt: set only when the status left pending via a verification
//     path (manual payment cascade or admin correction).
//   - CreatedAt: timestamp managed by GORM; indexed for recency listings.
type Donation struct {
	ID               string          `json:"id"                gorm:"type:char(36);primaryKey"`
	DonorName        *string         `json:"donor_name,omitempty"  gorm:"type:varchar(255)"`
	DonorEmail       *string         `json:"donor_email,omitempty" gorm:"type:varchar(255)"`
	Amount           decimal.Decimal `json:"amount"            gorm:"type:decimal(10,2);not null"`
	Currency         string          `json:"currency"          gorm:"type:varchar(8);not null;default:'USD'"`
	PaymentMethod    string          `json:"payment_method"    gorm:"type:varchar(16);not null;check:payment_method IN ('card','redirect','manual')"`
	PaymentReference *string         `json:"payment_reference,omitempty" gorm:"type:varchar(255)"`
	Status           string          `json:"status"            gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','completed','failed')"`
	IsAnonymous      bool            `json:"is_anonymous"      gorm:"not null;default:false"`
	DonationType     string          `json:"donation_type"     gorm:"type:varchar(16);not null;default:'one-time'"`
	VerifiedAt       *time.Time      `json:"verified_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"        gorm:"index:idx_donations_created"`
}

// TableName returns the database table name for Donation.
func (Donation) TableName() string { return "donations" }

// ManualPayment is a self-reported transfer awaiting human verification.
// The reference number is unique across all manual payments; a duplicate
// submission of the same reference is rejected at insert time.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - DonationID: optional link to exactly one donation.
//   - ReferenceNumber: channel reference as reported by the sender; unique.
//   - Amount: exact decimal amount as reported.
//   - SenderNumber: identifier the transfer was sent from (e.g. a mobile
//     wallet number).
//   - Status: pending, verified, or rejected; verified/rejected are
//     terminal and freeze the verifier fields.
//   - VerifiedBy / VerifiedAt: set only on the transition out of pending.
//   - CreatedAt: timestamp managed by GORM; indexed for the work queue.
type ManualPayment struct {
	ID              string          `json:"id"               gorm:"type:char(36);primaryKey"`
	DonationID      *string         `json:"donation_id,omitempty" gorm:"type:char(36);index:idx_payments_donation"`
	ReferenceNumber string          `json:"reference_number" gorm:"type:varchar(64);not null;uniqueIndex:ux_payments_reference"`
	Amount          decimal.Decimal `json:"amount"           gorm:"type:decimal(10,2);not null"`
	SenderNumber    *string         `json:"sender_number,omitempty" gorm:"type:varchar(32)"`
	Status          string          `json:"status"           gorm:"type:varchar(16);not null;default:'pending';check:status IN ('pending','verified','rejected')"`
	VerifiedBy      *string         `json:"verified_by,omitempty" gorm:"type:char(36)"`
	VerifiedAt      *time.Time      `json:"verified_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"       gorm:"index:idx_payments_created"`

	// Donation is the linked contribution, when the payment was reported
	// against one. The link is one-directional and never cascade-deleted.
	Donation *Donation `json:"-" gorm:"foreignKey:DonationID;references:ID"`
}

// TableName returns the database table name for ManualPayment.
func (ManualPayment) TableName() string { return "manual_payments" }

// Pending reports whether the payment is still awaiting verification.
func (p ManualPayment) Pending() bool { return p.Status == PaymentPending }

// ContactMessage is an inbound inquiry from the public contact form. It is
// independent of the payment flow and carries no lifecycle logic beyond its
// unread/read/responded status.
type ContactMessage struct {
	ID               string    `json:"id"          gorm:"type:char(36);primaryKey"`
	FirstName        string    `json:"first_name"  gorm:"type:varchar(128);not null"`
	LastName         string    `json:"last_name"   gorm:"type:varchar(128);not null"`
	Email            string    `json:"email"       gorm:"type:varchar(255);not null"`
	Subject          string    `json:"subject"     gorm:"type:varchar(255);not null"`
	InquiryType      string    `json:"inquiry_type" gorm:"type:varchar(64);not null"`
	Message          string    `json:"message"     gorm:"type:text;not null"`
	SubscribeUpdates bool      `json:"subscribe_updates" gorm:"not null;default:false"`
	Status           string    `json:"status"      gorm:"type:varchar(16);not null;default:'unread';check:status IN ('unread','read','responded')"`
	CreatedAt        time.Time `json:"created_at"  gorm:"index:idx_contact_created"`
}

// TableName returns the database table name for ContactMessage.
func (ContactMessage) TableName() string { return "contact_messages" }
