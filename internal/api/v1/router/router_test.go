package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go.uber.org/zap"

	"seoaudit/internal/api/v1/handler"
	"seoaudit/internal/log"
)

func TestMain(m *testing.M) {
	log.Logger, _ = zap.NewDevelopment()
	os.Exit(m.Run())
}

// Distinct forwarded IPs keep the per-client rate limiter out of the way.
func doRequest(t *testing.T, h http.Handler, method, path, ip string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-Forwarded-For", ip)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealth(t *testing.T) {
	r := New(handler.New(nil))

	rec := doRequest(t, r, http.MethodGet, "/seoaudit/api/v1/health", "10.0.0.1")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouterUnknownPath(t *testing.T) {
	r := New(handler.New(nil))

	rec := doRequest(t, r, http.MethodGet, "/nope", "10.0.0.2")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouterPreflight(t *testing.T) {
	r := New(handler.New(nil))

	rec := doRequest(t, r, http.MethodOptions, "/seoaudit/api/v1/analyze", "10.0.0.3")
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
}

func TestRouterRateLimit(t *testing.T) {
	r := New(handler.New(nil))

	var limited bool
	for i := 0; i < 10; i++ {
		rec := doRequest(t, r, http.MethodGet, "/seoaudit/api/v1/health", "10.0.0.4")
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected a burst from one client to hit the rate limit")
	}
}

func TestMetricsRouter(t *testing.T) {
	r := NewMetricsRouter()

	rec := doRequest(t, r, http.MethodGet, "/metrics", "10.0.0.5")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("metrics body is empty")
	}
}
