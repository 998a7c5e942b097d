package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "max-age=60")
	w.WriteHeader(http.StatusTeapot)
})

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	Security(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "max-age=60" {
		t.Fatalf("handler value overwritten: %q", got)
	}
}

func TestForceHTTPS(t *testing.T) {
	on := func() bool { return true }
	h := ForceHTTPS(on)(okHandler)

	cases := []struct {
		name   string
		host   string
		proto  string
		tls    bool
		status int
	}{
		{"plain http redirects", "example.com", "", false, http.StatusPermanentRedirect},
		{"tls passes", "example.com", "", true, http.StatusTeapot},
		{"proxy https passes", "example.com", "https", false, http.StatusTeapot},
		{"localhost passes", "localhost:8080", "", false, http.StatusTeapot},
		{"loopback ip passes", "127.0.0.1:8080", "", false, http.StatusTeapot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/pages/home?x=1", nil)
			req.Host = tc.host
			if tc.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tc.proto)
			}
			if tc.tls {
				req.TLS = &tls.ConnectionState{}
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			if tc.status == http.StatusPermanentRedirect {
				if loc := rec.Header().Get("Location"); loc != "https://example.com/pages/home?x=1" {
					t.Fatalf("Location = %q", loc)
				}
			}
		})
	}

	for name, enabled := range map[string]func() bool{
		"nil":   nil,
		"false": func() bool { return false },
	} {
		rec := httptest.NewRecorder()
		ForceHTTPS(enabled)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/", nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("%s: disabled wrapper redirected: %d", name, rec.Code)
		}
	}
}

func TestForceHTTPSFollowsToggle(t *testing.T) {
	var flag atomic.Bool
	h := ForceHTTPS(flag.Load)(okHandler)

	serve := func() int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com/", nil))
		return rec.Code
	}
	if got := serve(); got != http.StatusTeapot {
		t.Fatalf("off: status = %d", got)
	}
	flag.Store(true)
	if got := serve(); got != http.StatusPermanentRedirect {
		t.Fatalf("on: status = %d", got)
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	h := chiMid.RequestID(RequestLogger(log)(okHandler))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/render", nil))

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) || fields["path"] != "/render" || fields["method"] != "POST" {
		t.Fatalf("unexpected fields %v", fields)
	}
	if fields["request_id"] == "" {
		t.Fatalf("request id missing")
	}
}
