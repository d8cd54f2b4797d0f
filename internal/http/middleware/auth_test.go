package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/services"
)

type stubAuth struct {
	user *domain.User
	sess *domain.Session
	err  error
}

func (s stubAuth) Authenticate(context.Context, string, ...string) (*domain.User, *domain.Session, error) {
	return s.user, s.sess, s.err
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]string{
		"":               "",
		"Bearer abc":     "abc",
		"bearer abc":     "abc", // scheme is case-insensitive
		"Basic abc":      "",
		"Bearer":         "",
		"Bearer  spaced": "spaced",
	}
	for header, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		if got := BearerToken(c); got != want {
			t.Fatalf("BearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestRequireRoles_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRoles(stubAuth{err: services.ErrUnauthenticated}), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRoles(stubAuth{err: services.ErrForbidden}), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRequireRoles_StoresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	u := &domain.User{ID: "u1", Username: "admin", Role: domain.RoleAdmin}
	s := &domain.Session{ID: "s1", UserID: "u1"}

	r := gin.New()
	r.GET("/x", RequireRoles(stubAuth{user: u, sess: s}), func(c *gin.Context) {
		if got := UserFrom(c); got == nil || got.ID != "u1" {
			t.Fatalf("UserFrom = %+v", got)
		}
		if got := SessionFrom(c); got == nil || got.ID != "s1" {
			t.Fatalf("SessionFrom = %+v", got)
		}
		if got := c.GetString("userID"); got != "u1" {
			t.Fatalf("userID = %q", got)
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
