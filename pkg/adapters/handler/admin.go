package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
)

type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard returns the full catalog (inactive coupons included), derived
// stats and the most recent engagement events.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.admin.RecentEvents(ctx, 20)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"stats":         h.admin.Stats(ctx),
		"coupons":       h.admin.AllCoupons(ctx),
		"stores":        h.admin.AllStores(ctx),
		"categories":    h.admin.AllCategories(ctx),
		"recent_events": events,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// UpdateCoupons overwrites the entire coupon collection. The dashboard
// edits coupons client-side and submits the whole list back.
func (h *AdminHandler) UpdateCoupons(w http.ResponseWriter, r *http.Request) {
	var coupons []domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupons); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.admin.ReplaceCoupons(r.Context(), coupons); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"coupons": h.admin.AllCoupons(r.Context()),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
