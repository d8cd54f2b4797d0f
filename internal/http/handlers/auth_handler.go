// Authentication HTTP handlers.
//
// This file exposes the REST endpoints for the back-office access gate:
//   - POST /auth/login   (credential + portal check, session issue)
//   - POST /auth/logout  (idempotent session delete)
//   - GET  /auth/me      (resolved identity for the presented token)
//
// Handlers in this file are transport-thin: they validate input, delegate to
// the auth service, and translate service errors into HTTP results. The
// session id returned by login is the bearer token for subsequent requests.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-donation-backend/internal/domain"
	"github.com/tbourn/go-donation-backend/internal/http/middleware"
	"github.com/tbourn/go-donation-backend/internal/services"
)

// LoginRequest is the JSON payload for authenticating a back-office user.
//
// Portal optionally names the login context ("admin" or "owner"); when set,
// the user's role must grant access to that portal.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"s3cret"`
	Portal   string `json:"portal,omitempty" binding:"omitempty,oneof=admin owner" example:"admin"`
}

// LoginResponse is returned on successful authentication. SessionID is the
// bearer token for subsequent requests.
type LoginResponse struct {
	User      *domain.User `json:"user"`
	SessionID string       `json:"session_id"`
}

// Login godoc
// @ID          login
// @Summary     Authenticate a back-office user
// @Description Verifies credentials (and portal access when requested) and issues a 24h session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body handlers.LoginRequest true "Credentials"
// @Success     200  {object} handlers.LoginResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401  {object} handlers.ErrorResponse "Invalid credentials"
// @Failure     403  {object} handlers.ErrorResponse "Portal access denied"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeValidation, "username and password are required")
		return
	}

	user, sessionID, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password, req.Portal)
	if err != nil {
		switch err {
		case services.ErrInvalidCredentials:
			fail(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid credentials")
		case services.ErrPortalMismatch:
			fail(c, http.StatusForbidden, ErrCodePortalMismatch, "portal access denied")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, LoginResponse{User: user, SessionID: sessionID})
}

// Logout godoc
// @ID          logout
// @Summary     End the current session
// @Description Deletes the session identified by the bearer token. Idempotent.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     204  {string} string "No Content"
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Failure     500  {object} handlers.ErrorResponse "Internal server error"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.authSvc.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// Me godoc
// @ID          me
// @Summary     Resolve the authenticated user
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200  {object} domain.User
// @Failure     401  {object} handlers.ErrorResponse "Authentication required"
// @Router      /auth/me [get]
func (h *Handlers) Me(c *gin.Context) {
	ok(c, http.StatusOK, middleware.UserFrom(c))
}
