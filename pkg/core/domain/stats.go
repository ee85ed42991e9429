package domain

import "time"

// SiteStats represents aggregated catalog statistics.
// Derived on demand from the coupon and store collections, never stored.
type SiteStats struct {
	TotalClicks     int64 `json:"totalClicks"`
	TotalCoupons    int   `json:"totalCoupons"`
	TotalStores     int   `json:"totalStores"`
	FeaturedCoupons int   `json:"featuredCoupons"`
}

// Engagement kinds
const (
	EngagementClick = "click"
	EngagementCopy  = "copy"
)

// EngagementEvent represents a single click or code-copy action on a coupon
type EngagementEvent struct {
	ID        int64     `json:"id"`
	CouponID  string    `json:"coupon_id"`
	Kind      string    `json:"kind"` // "click" or "copy"
	Referer   string    `json:"referer,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
