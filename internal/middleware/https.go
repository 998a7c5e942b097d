// Package middleware holds small, composable HTTP wrappers.
package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ForceHTTPS wraps h.  When enabled() is true and the request arrived over
// plain HTTP (directly or per X-Forwarded-Proto) for a non-loopback host, the
// wrapper issues a 308 Permanent Redirect to the HTTPS version of the same
// URL.  Otherwise it calls h unchanged.  enabled is consulted per request so
// a config reload can flip it; a nil enabled never redirects.
func ForceHTTPS(enabled func() bool) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		if enabled == nil {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled() || isHTTPS(r) || isLoopback(stripPort(r.Host)) {
				h.ServeHTTP(w, r)
				return
			}
			target := "https://" + r.Host + r.URL.RequestURI()
			http.Redirect(w, r, target, http.StatusPermanentRedirect)
		})
	}
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// stripPort removes any “:port” suffix from a Host header.
func stripPort(h string) string {
	if host, _, err := net.SplitHostPort(h); err == nil {
		return strings.Trim(host, "[]")
	}
	return h
}
