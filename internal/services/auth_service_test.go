package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/repo"
)

func TestAuth_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	_, _, err := svc.Login(context.Background(), "ghost", "pw", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newTestDB(t))
	if _, err := svc.CreateUser(context.Background(), "admin", "correct-horse", nil, domain.RoleAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "admin", "battery-staple", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Login_Success_IssuesSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	if _, err := svc.CreateUser(context.Background(), "admin", "correct-horse", nil, domain.RoleAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}

	u, token, err := svc.Login(context.Background(), "admin", "correct-horse", "admin")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if u.PasswordHash != "" {
		t.Fatal("credential hash must be cleared on the returned user")
	}

	got, _, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.Username != "admin" {
		t.Fatalf("expected admin, got %q", got.Username)
	}
}

func TestAuth_Login_PortalMismatch(t *testing.T) {
	svc := NewAuthService(newTestDB(t))
	if _, err := svc.CreateUser(context.Background(), "admin", "pw123456", nil, domain.RoleAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Admin credentials presented at the owner portal.
	if _, _, err := svc.Login(context.Background(), "admin", "pw123456", "owner"); !errors.Is(err, ErrPortalMismatch) {
		t.Fatalf("expected ErrPortalMismatch, got %v", err)
	}
	// Unrecognized portal value never matches either.
	if _, _, err := svc.Login(context.Background(), "admin", "pw123456", "superuser"); !errors.Is(err, ErrPortalMismatch) {
		t.Fatalf("expected ErrPortalMismatch for unknown portal, got %v", err)
	}
	// No portal: credentials alone suffice.
	if _, _, err := svc.Login(context.Background(), "admin", "pw123456", ""); err != nil {
		t.Fatalf("portal-less login: %v", err)
	}
}

func TestAuth_Authenticate_EmptyOrUnknownToken(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	if _, _, err := svc.Authenticate(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("empty token: expected ErrUnauthenticated, got %v", err)
	}
	if _, _, err := svc.Authenticate(context.Background(), "nope"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("unknown token: expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_Authenticate_ExpiredSession_DeletedLazily(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db, SessionTTL: -time.Hour} // sessions born expired
	if _, err := svc.CreateUser(context.Background(), "admin", "pw123456", nil, domain.RoleAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}
	_, token, err := svc.Login(context.Background(), "admin", "pw123456", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// TTL<=0 falls back to the default, so force the expiry directly.
	if err := db.Model(&domain.Session{}).Where("id = ?", token).
		Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("age session: %v", err)
	}

	if _, _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	// The expired row was removed, not just skipped.
	n, err := repo.CountSessions(context.Background(), db)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 sessions after lazy cleanup, got %d", n)
	}
}

func TestAuth_Authenticate_RoleGate(t *testing.T) {
	svc := NewAuthService(newTestDB(t))
	if _, err := svc.CreateUser(context.Background(), "admin", "pw123456", nil, domain.RoleAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}
	_, token, err := svc.Login(context.Background(), "admin", "pw123456", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, _, err := svc.Authenticate(context.Background(), token, domain.RoleOwner); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, _, err := svc.Authenticate(context.Background(), token, domain.RoleAdmin, domain.RoleOwner); err != nil {
		t.Fatalf("admin should pass a staff gate: %v", err)
	}
}

func TestAuth_Logout_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)
	if _, err := svc.CreateUser(context.Background(), "admin", "pw123456", nil, domain.RoleAdmin); err != nil {
		t.Fatalf("create user: %v", err)
	}
	_, token, err := svc.Login(context.Background(), "admin", "pw123456", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("second logout must be a no-op: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("empty-token logout must be a no-op: %v", err)
	}

	if _, _, err := svc.Authenticate(context.Background(), token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("token must be dead after logout, got %v", err)
	}
}

func TestAuth_CreateUser_DuplicateUsername(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	if _, err := svc.CreateUser(context.Background(), "admin", "pw123456", nil, domain.RoleAdmin); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "admin", "other-pass", nil, domain.RoleOwner); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuth_EnsureUser_OnlyCreatesOnce(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	if err := svc.EnsureUser(context.Background(), "owner", "pw123456", nil, domain.RoleOwner); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := svc.EnsureUser(context.Background(), "owner", "different", nil, domain.RoleOwner); err != nil {
		t.Fatalf("second ensure must be a no-op: %v", err)
	}

	// Original password still valid: ensure never rewrites credentials.
	if _, _, err := svc.Login(context.Background(), "owner", "pw123456", "owner"); err != nil {
		t.Fatalf("login with the seeded password: %v", err)
	}
}
