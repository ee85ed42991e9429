// Package seed holds the immutable bootstrap dataset. The catalog starts
// from these values on every run; a persisted coupon collection, when
// present and valid, fully replaces the seeded coupons.
package seed

import (
	"time"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
)

var seededAt = time.Now().UTC().Format(time.RFC3339)

// Stores returns a fresh copy of the seed store list.
func Stores() []domain.Store {
	return []domain.Store{
		{ID: "1", Name: "Nike", LogoURL: "https://picsum.photos/seed/nike/200/200", WebsiteURL: "https://nike.com", Slug: "nike", Description: "Global leader in athletic footwear and apparel."},
		{ID: "2", Name: "Amazon", LogoURL: "https://picsum.photos/seed/amazon/200/200", WebsiteURL: "https://amazon.com", Slug: "amazon", Description: "Everything you need, delivered."},
		{ID: "3", Name: "Sephora", LogoURL: "https://picsum.photos/seed/sephora/200/200", WebsiteURL: "https://sephora.com", Slug: "sephora", Description: "Beauty, cosmetics and skincare destination."},
		{ID: "4", Name: "Best Buy", LogoURL: "https://picsum.photos/seed/bestbuy/200/200", WebsiteURL: "https://bestbuy.com", Slug: "best-buy", Description: "Consumer electronics and home appliances."},
		{ID: "5", Name: "Target", LogoURL: "https://picsum.photos/seed/target/200/200", WebsiteURL: "https://target.com", Slug: "target", Description: "Shop all your daily essentials."},
		{ID: "6", Name: "Walmart", LogoURL: "https://picsum.photos/seed/walmart/200/200", WebsiteURL: "https://walmart.com", Slug: "walmart", Description: "Save money. Live better."},
	}
}

// Categories returns a fresh copy of the seed category list.
func Categories() []domain.Category {
	return []domain.Category{
		{ID: "cat1", Name: "Electronics", Icon: "devices", Slug: "electronics"},
		{ID: "cat2", Name: "Fashion", Icon: "apparel", Slug: "fashion"},
		{ID: "cat3", Name: "Beauty", Icon: "face", Slug: "beauty"},
		{ID: "cat4", Name: "Home & Kitchen", Icon: "kitchen", Slug: "home-kitchen"},
		{ID: "cat5", Name: "Travel", Icon: "flight", Slug: "travel"},
	}
}

// Coupons returns a fresh copy of the seed coupon list.
func Coupons() []domain.Coupon {
	return []domain.Coupon{
		{
			ID:            "c1",
			Title:         "20% Off Entire Order",
			Type:          domain.CouponCode,
			Code:          "NIKE20",
			DiscountValue: "20%",
			StoreID:       "1",
			CategoryID:    "cat2",
			ExpiryDate:    "2025-12-31",
			Description:   "Get 20% off all regular priced items.",
			Terms:         "Valid on regular priced items only. Not applicable on limited editions.",
			AffiliateURL:  "https://nike.com/shop",
			IsActive:      true,
			IsFeatured:    true,
			ClickCount:    1240,
			CopyCount:     450,
			VerifiedDate:  seededAt,
		},
		{
			ID:            "c2",
			Title:         "Free Shipping Over $50",
			Type:          domain.CouponDeal,
			DiscountValue: "FREE",
			StoreID:       "2",
			CategoryID:    "cat1",
			ExpiryDate:    "2025-06-15",
			Description:   "Enjoy free standard shipping on eligible orders over $50.",
			Terms:         "Minimum spend of $50 required.",
			AffiliateURL:  "https://amazon.com/shipping",
			IsActive:      true,
			IsFeatured:    true,
			ClickCount:    3500,
			CopyCount:     0,
			VerifiedDate:  seededAt,
		},
		{
			ID:            "c3",
			Title:         "$10 Off First Order",
			Type:          domain.CouponCode,
			Code:          "WELCOME10",
			DiscountValue: "$10",
			StoreID:       "3",
			CategoryID:    "cat3",
			ExpiryDate:    "2025-03-01",
			Description:   "Exclusive discount for new customers.",
			Terms:         "Valid for new accounts only. Minimum spend $50.",
			AffiliateURL:  "https://sephora.com",
			IsActive:      true,
			IsFeatured:    false,
			ClickCount:    890,
			CopyCount:     300,
			VerifiedDate:  seededAt,
		},
		{
			ID:            "c4",
			Title:         "$200 Off MacBook Pro",
			Type:          domain.CouponDeal,
			DiscountValue: "$200",
			StoreID:       "4",
			CategoryID:    "cat1",
			ExpiryDate:    "2025-01-20",
			Description:   "Massive savings on latest MacBook Pro models.",
			Terms:         "While stocks last. Selected models only.",
			AffiliateURL:  "https://bestbuy.com/macbook",
			IsActive:      true,
			IsFeatured:    true,
			ClickCount:    520,
			CopyCount:     0,
			VerifiedDate:  seededAt,
		},
	}
}
