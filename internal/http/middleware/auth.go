// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the access gate in front of the back office. It
// extracts the bearer token, resolves it through the auth service (live
// session → user → role membership), and either aborts with the structured
// error envelope or exposes the resolved identity to downstream handlers.
//
// Role checks are a set-membership test against the enumerated role
// constants; handlers declare the roles they require at route registration
// time and never branch on roles themselves.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/services"
)

const (
	// ctxKeyUser is the Gin context key holding the authenticated *domain.User.
	ctxKeyUser = "authUser"
	// ctxKeySession is the Gin context key holding the live *domain.Session.
	ctxKeySession = "authSession"
)

// Authenticator is the contract the gate needs from the auth service.
type Authenticator interface {
	Authenticate(ctx context.Context, token string, roles ...string) (*domain.User, *domain.Session, error)
}

// BearerToken extracts the bearer token from the Authorization header.
// Returns "" when the header is absent or not a bearer scheme.
func BearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRoles returns a Gin middleware that authenticates the request and
// enforces membership in roles. An empty roles list admits any
// authenticated user.
//
// On success the resolved user and session are stored in the context
// (retrievable via UserFrom / SessionFrom) and "userID" is set so the rate
// limiter keys by user instead of IP.
func RequireRoles(auth Authenticator, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, sess, err := auth.Authenticate(c.Request.Context(), BearerToken(c), roles...)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthenticated):
				abortEnvelope(c, http.StatusUnauthorized, "unauthorized", "authentication required")
			case errors.Is(err, services.ErrForbidden):
				abortEnvelope(c, http.StatusForbidden, "forbidden", "insufficient permissions")
			default:
				abortEnvelope(c, http.StatusInternalServerError, "internal_error", "authentication failed")
			}
			return
		}
		c.Set(ctxKeyUser, user)
		c.Set(ctxKeySession, sess)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// UserFrom returns the authenticated user stored by RequireRoles, or nil.
func UserFrom(c *gin.Context) *domain.User {
	if v, ok := c.Get(ctxKeyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}

// SessionFrom returns the live session stored by RequireRoles, or nil.
func SessionFrom(c *gin.Context) *domain.Session {
	if v, ok := c.Get(ctxKeySession); ok {
		if s, ok := v.(*domain.Session); ok {
			return s
		}
	}
	return nil
}

// abortEnvelope writes the standard error envelope without importing the
// handlers package (which would cycle).
func abortEnvelope(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       code,
		"message":    msg,
	})
}
