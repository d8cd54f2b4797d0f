// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, a structured HTTP logger that scrubs
// donor PII from request metadata before emitting logs. A donation backend
// sees emails, phone numbers and mobile-money reference numbers on almost
// every request; none of them belong in log storage.
//
// Two layers of scrubbing are applied:
//   - Known query parameters (email, phone, sender_number, reference_number,
//     token) are masked wholesale by key.
//   - Free-form text (remaining query values, header values) is pattern
//     scrubbed for emails, phone numbers and UUID-like identifiers.
//
// Request and response bodies are never logged.
package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Scrub patterns, compiled once. UUIDs must be redacted before phone
// numbers: the loose phone pattern would otherwise match the digit and
// hyphen runs inside a UUID.
var (
	reUUID  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	reEmail = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	rePhone = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// Query parameters whose values are always masked regardless of content.
// Matching is on the lowercased key.
var sensitiveParams = map[string]struct{}{
	"email":            {},
	"phone":            {},
	"sender_number":    {},
	"reference_number": {},
	"token":            {},
}

// RedactOptions configures extra scrub behavior for RedactingLogger.
//
// MaskHeaders names additional HTTP headers whose values are replaced with
// "[REDACTED]" in full. Matching is case-insensitive and merged with the
// built-in set (Authorization, Cookie, Set-Cookie).
type RedactOptions struct {
	MaskHeaders []string
}

func scrubText(s string) string {
	if s == "" {
		return s
	}
	out := reUUID.ReplaceAllString(s, "[REDACTED:id]")
	out = reEmail.ReplaceAllString(out, "[REDACTED:email]")
	return rePhone.ReplaceAllString(out, "[REDACTED:phone]")
}

// scrubQuery walks the raw query string segment by segment, preserving the
// original ordering. Values under a sensitive key are masked outright;
// everything else goes through the pattern scrub.
func scrubQuery(raw string) string {
	if raw == "" {
		return raw
	}
	segs := strings.Split(raw, "&")
	for i, seg := range segs {
		key, _, found := strings.Cut(seg, "=")
		if !found {
			segs[i] = scrubText(seg)
			continue
		}
		if _, sensitive := sensitiveParams[strings.ToLower(key)]; sensitive {
			segs[i] = key + "=[MASKED]"
			continue
		}
		segs[i] = scrubText(seg)
	}
	return strings.Join(segs, "&")
}

// RedactingLogger returns a Gin middleware that logs one structured line per
// request: method, route, scrubbed query, status, response size, latency and
// scrubbed headers. Severity is info for 2xx/3xx, warn for 4xx and error
// for 5xx. The request id is taken from the X-Request-ID response header,
// falling back to the request header.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	masked := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		safeQuery := scrubQuery(c.Request.URL.RawQuery)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for name, vals := range c.Request.Header {
			if _, hide := masked[strings.ToLower(name)]; hide {
				safeHeaders[name] = "[REDACTED]"
				continue
			}
			safeHeaders[name] = scrubText(strings.Join(vals, ", "))
		}

		c.Next()

		status := c.Writer.Status()
		reqID := c.Writer.Header().Get("X-Request-ID")
		if reqID == "" {
			reqID = c.GetHeader("X-Request-ID")
		}

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}

		ev.
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", route).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
