// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides the correlation-id injector, the panic recovery
// handler and the request-scoped logger. RequestID runs first in the chain:
// it fixes the X-Request-ID for the lifetime of the request and hangs a
// zerolog.Logger carrying that id in the Gin context, so that everything
// downstream (access logs, error envelopes, service logs) tells the same
// story about one request.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// requestIDKey is the Gin context key under which the request ID is stored.
	requestIDKey = "requestID"
	// loggerKey is the Gin context key holding the request-scoped logger.
	loggerKey = "logger"
	// requestIDHeader propagates the correlation ID to and from clients.
	requestIDHeader = "X-Request-ID"
	// maxRequestIDLength caps client-supplied ids. Anything longer is
	// replaced, which keeps log lines bounded and blunts injection attempts.
	maxRequestIDLength = 128
)

// RequestID attaches a correlation identifier and a request-scoped logger
// to every request.
//
// A client-supplied X-Request-ID is reused when it is non-empty and within
// the length cap; otherwise a fresh UUIDv4 is generated. The id is echoed
// on the response header and stored in the Gin context, together with a
// zerolog.Logger pre-tagged with request_id, method and path. Retrieve the
// logger with LoggerFrom.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > maxRequestIDLength {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		l := log.With().
			Str("request_id", rid).
			Str("method", c.Request.Method).
			Str("path", route).
			Logger()
		c.Set(loggerKey, &l)

		c.Next()
	}
}

// Recovery intercepts panics, logs the stack trace under the request id and
// answers with the standard JSON error envelope when nothing has been
// written yet. Place it after RequestID.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid, _ := c.Get(requestIDKey)
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", asString(rid)).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header("Content-Type", "application/json")
			c.Header(requestIDHeader, asString(rid))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": asString(rid),
				"code":       "internal_error",
				"message":    "internal server error",
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped zerolog.Logger attached by
// RequestID. When none is present (direct handler tests, background work)
// it falls back to the global logger, so callers never need a nil check.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// asString converts a context value to a string, empty when it is not one.
func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
