package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func Test_routeLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/donations/:id", func(c *gin.Context) {
		if got := routeLabel(c); got != "/donations/:id" {
			t.Fatalf("routeLabel = %q, want route pattern", got)
		}
		c.Status(http.StatusOK)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/donations/7", nil))
}

func TestMetrics_CountersAndInflight(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "hello") // body written, size >= 0
	})
	r.GET("/nobody", func(c *gin.Context) {
		c.Status(http.StatusNoContent) // size stays -1, size histogram skipped
	})

	// Baselines, in case other tests touched the shared collectors.
	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/ok", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/missing", "404"))

	for _, path := range []string{"/ok", "/missing", "/nobody"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/ok", "200")); got != baseOK+1 {
		t.Fatalf("counter /ok 200 = %v; want %v", got, baseOK+1)
	}
	// Unmatched routes fall back to the raw path label.
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/missing", "404")); got != base404+1 {
		t.Fatalf("counter 404 fallback = %v; want %v", got, base404+1)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0 after completion", inFlight)
	}
}
