package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/config"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
)

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, service ports.CatalogService, admin ports.AdminService, gate ports.AuthGate) http.Handler {
	// Initialize Handlers
	h := NewHTTPHandler(service)
	ah := NewAdminHandler(admin)
	authHandler := NewAuthHandler(cfg, gate)

	// Initialize Middleware
	mw := NewMiddleware(gate)

	// Setup Router
	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		res := map[string]string{
			"message": "ok",
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(&res)
	})
	mux.HandleFunc("GET /api/v1/home", h.Home)
	mux.HandleFunc("GET /api/v1/stores/{slug}", h.Store)
	mux.HandleFunc("GET /api/v1/categories/{slug}", h.Category)
	mux.HandleFunc("GET /api/v1/search", h.Search)
	mux.HandleFunc("POST /api/v1/coupons/{id}/click", h.TrackClick)
	mux.HandleFunc("POST /api/v1/coupons/{id}/copy", h.TrackCopy)

	// Auth Routes
	mux.HandleFunc("GET /admin/login", authHandler.LoginPage)
	mux.HandleFunc("POST /admin/api/login", authHandler.Login)
	mux.HandleFunc("POST /admin/api/logout", authHandler.Logout)
	mux.HandleFunc("GET /auth/google/login", authHandler.GoogleLogin)
	mux.HandleFunc("GET /auth/google/callback", authHandler.GoogleCallback)

	// Gated Admin Routes
	adminMux := http.NewServeMux()
	adminMux.HandleFunc("GET /admin/api/dashboard", ah.Dashboard)
	adminMux.HandleFunc("PUT /admin/api/coupons", ah.UpdateCoupons)

	// Apply Middleware to Gated Routes
	// Note: the exact login/logout patterns above are more specific than
	// this subtree, so they stay reachable without a session.
	mux.Handle("/admin/api/", mw.AuthMiddleware(adminMux))

	// Catch-all: `?manage` marker handling plus the home fallback for any
	// unrecognized route.
	mux.HandleFunc("/", h.Root)

	return mux
}
