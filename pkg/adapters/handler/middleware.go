package handler

import (
	"net/http"
	"strings"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
)

type Middleware struct {
	gate ports.AuthGate
}

func NewMiddleware(gate ports.AuthGate) *Middleware {
	return &Middleware{gate: gate}
}

// AuthMiddleware guards the admin routes. Unauthorized requests are
// redirected to the login page, never errored; API clients get a 401.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.gate.Authorized(r) {
			if isAPIRequest(r) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
			} else {
				http.Redirect(w, r, "/admin/login", http.StatusTemporaryRedirect)
			}
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/admin/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
