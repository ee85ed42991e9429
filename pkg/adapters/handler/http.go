package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
)

type HTTPHandler struct {
	service ports.CatalogService
}

func NewHTTPHandler(service ports.CatalogService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Root is the catch-all route. A `manage` query parameter is the private
// marker for the admin login page; it gets stripped by the redirect.
// Everything else (including unrecognized paths) falls back to the home
// payload.
func (h *HTTPHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("manage") {
		http.Redirect(w, r, "/admin/login", http.StatusFound)
		return
	}
	h.Home(w, r)
}

// Home returns active coupons plus all stores and categories
func (h *HTTPHandler) Home(w http.ResponseWriter, r *http.Request) {
	coupons, stores, categories := h.service.Home(r.Context())

	resp := map[string]interface{}{
		"coupons":    coupons,
		"stores":     stores,
		"categories": categories,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Store returns one store by slug with its active coupons
func (h *HTTPHandler) Store(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		http.Error(w, "Slug missing", http.StatusBadRequest)
		return
	}

	store, coupons := h.service.StoreView(r.Context(), slug)
	if store == nil {
		writeError(w, http.StatusNotFound, "store not found")
		return
	}

	resp := map[string]interface{}{
		"store":   store,
		"coupons": coupons,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Category returns one category by slug with its active coupons and the
// store list for display context
func (h *HTTPHandler) Category(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		http.Error(w, "Slug missing", http.StatusBadRequest)
		return
	}

	category, coupons, stores := h.service.CategoryView(r.Context(), slug)
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	resp := map[string]interface{}{
		"category": category,
		"coupons":  coupons,
		"stores":   stores,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Search matches active coupons by title or store name
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	coupons := h.service.Search(r.Context(), query)

	resp := map[string]interface{}{
		"query":   query,
		"coupons": coupons,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// TrackClick counts an affiliate link visit
func (h *HTTPHandler) TrackClick(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, h.service.TrackClick)
}

// TrackCopy counts a code-copy action
func (h *HTTPHandler) TrackCopy(w http.ResponseWriter, r *http.Request) {
	h.track(w, r, h.service.TrackCopy)
}

func (h *HTTPHandler) track(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, couponID, referer, userAgent string) error) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Coupon ID missing", http.StatusBadRequest)
		return
	}

	if err := fn(r.Context(), id, r.Header.Get("Referer"), r.UserAgent()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Unknown IDs are a deliberate no-op, so this is 204 either way.
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
