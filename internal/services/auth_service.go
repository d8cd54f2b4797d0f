// Package services – AuthService
//
// This file implements the AuthService, the access gate in front of the
// back office. It owns the three authentication flows: login (credential
// check, portal check, session issue), logout (idempotent session delete),
// and per-request authentication (bearer token → live session → user →
// role membership). Credentials are compared against salted argon2id
// hashes; the service never stores or returns plaintext secrets.
//
// Session expiry is lazy: an expired session is deleted from the store the
// first time it is presented, and treated as absent from then on. There is
// no background sweep.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/repo"
)

// DefaultSessionTTL is the validity window of a newly issued session.
const DefaultSessionTTL = 24 * time.Hour

// AuthService implements authentication and role-based authorization.
type AuthService struct {
	// DB is the database handle used for all auth operations.
	DB *gorm.DB

	// SessionTTL is the validity window for new sessions. Zero means
	// DefaultSessionTTL.
	SessionTTL time.Duration
}

// NewAuthService constructs an AuthService with the default session TTL.
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db, SessionTTL: DefaultSessionTTL}
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Login authenticates username/password and issues a session.
//
// Semantics:
//   - Unknown username and wrong password both yield ErrInvalidCredentials.
//   - portal optionally names the login context ("admin" or "owner"). When
//     set, the user's role must match it exactly; otherwise
//     ErrPortalMismatch. An unrecognized portal value never matches.
//   - On success a session valid for SessionTTL is created and the user is
//     returned with its credential hash cleared. The session id is the
//     bearer token.
func (s *AuthService) Login(ctx context.Context, username, password, portal string) (*domain.User, string, error) {
	u, err := repo.GetUserByUsername(ctx, s.DB, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	match, err := argon2id.ComparePasswordAndHash(password, u.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !match {
		return nil, "", ErrInvalidCredentials
	}

	if portal != "" && u.Role != portal {
		return nil, "", ErrPortalMismatch
	}

	sess, err := repo.CreateSession(ctx, s.DB, u.ID, time.Now().UTC().Add(s.ttl()), nil)
	if err != nil {
		return nil, "", err
	}

	u.PasswordHash = ""
	return u, sess.ID, nil
}

// Logout deletes the session identified by token. Deleting an absent
// session is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return repo.DeleteSession(ctx, s.DB, token)
}

// Authenticate resolves a bearer token to a live user and session, then
// enforces role membership.
//
// Semantics:
//   - An empty or unknown token yields ErrUnauthenticated.
//   - A session past its expiry is deleted from the store as a side effect
//     and treated as absent.
//   - A session whose user no longer exists yields ErrUnauthenticated.
//   - When roles is non-empty, the user's role must be a member of the set;
//     otherwise ErrForbidden. An empty set means any authenticated user.
//
// On success the resolved user (credential hash cleared) and session are
// returned for the calling operation.
func (s *AuthService) Authenticate(ctx context.Context, token string, roles ...string) (*domain.User, *domain.Session, error) {
	if token == "" {
		return nil, nil, ErrUnauthenticated
	}

	sess, err := repo.GetSession(ctx, s.DB, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, err
	}

	if sess.Expired(time.Now().UTC()) {
		if err := repo.DeleteSession(ctx, s.DB, sess.ID); err != nil {
			return nil, nil, err
		}
		return nil, nil, ErrUnauthenticated
	}

	u, err := repo.GetUser(ctx, s.DB, sess.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, err
	}

	if len(roles) > 0 && !roleMember(u.Role, roles) {
		return nil, nil, ErrForbidden
	}

	u.PasswordHash = ""
	return u, sess, nil
}

// CreateUser hashes the password with argon2id and stores a new user.
// A taken username yields ErrDuplicateUsername; an unknown role is rejected
// before touching the store.
func (s *AuthService) CreateUser(ctx context.Context, username, password string, email *string, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, ErrForbidden
	}
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, err
	}
	u, err := repo.CreateUser(ctx, s.DB, username, hash, email, role)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// EnsureUser creates the account if no user carries the username yet.
// Used at bootstrap for the seeded admin and owner accounts.
func (s *AuthService) EnsureUser(ctx context.Context, username, password string, email *string, role string) error {
	_, err := repo.GetUserByUsername(ctx, s.DB, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	_, err = s.CreateUser(ctx, username, password, email, role)
	return err
}

// roleMember reports whether role belongs to the required set.
func roleMember(role string, set []string) bool {
	for _, r := range set {
		if r == role {
			return true
		}
	}
	return false
}
