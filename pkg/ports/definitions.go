package ports

import (
	"context"
	"net/http"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
)

// Persisted storage keys
const (
	CouponsKey   = "gc_coupons"    // JSON array of Coupon, overwritten wholesale
	AdminAuthKey = "gc_admin_auth" // literal "true" when authenticated, absent otherwise
)

// KVStore defines the synchronous key-value persistence contract.
// Each operation is atomic per key; there is no cross-key transaction.
type KVStore interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// EngagementLog records individual click/copy events for the admin view.
// Counters inside the persisted coupon collection stay authoritative;
// the log is history only.
type EngagementLog interface {
	Record(ctx context.Context, event *domain.EngagementEvent) error
	Recent(ctx context.Context, limit int) ([]domain.EngagementEvent, error)
}

// CatalogService defines the public-facing catalog operations.
// Lookup misses are reported as nil results, not errors.
type CatalogService interface {
	Home(ctx context.Context) (coupons []domain.Coupon, stores []domain.Store, categories []domain.Category)
	StoreView(ctx context.Context, slug string) (*domain.Store, []domain.Coupon)
	CategoryView(ctx context.Context, slug string) (*domain.Category, []domain.Coupon, []domain.Store)
	Search(ctx context.Context, query string) []domain.Coupon

	// Engagement tracking. Unknown coupon IDs are a no-op.
	TrackClick(ctx context.Context, couponID, referer, userAgent string) error
	TrackCopy(ctx context.Context, couponID, referer, userAgent string) error
}

// AdminService defines the gated management operations.
type AdminService interface {
	AllCoupons(ctx context.Context) []domain.Coupon // includes inactive
	AllStores(ctx context.Context) []domain.Store
	AllCategories(ctx context.Context) []domain.Category
	Stats(ctx context.Context) domain.SiteStats
	RecentEvents(ctx context.Context, limit int) ([]domain.EngagementEvent, error)
	ReplaceCoupons(ctx context.Context, coupons []domain.Coupon) error
}

// AuthGate is the single access-control abstraction in front of the admin
// routes. The default implementation is a convenience gate, not a security
// boundary; a real credential check can be substituted here without
// touching routing.
type AuthGate interface {
	Authorized(r *http.Request) bool
	Grant(ctx context.Context, w http.ResponseWriter) error
	Revoke(ctx context.Context, w http.ResponseWriter) error
}
