package services

import (
	"context"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
)

// Admin-facing operations. These read the same state as the public views
// but do not filter out inactive coupons.

// AllCoupons returns every coupon, including inactive ones.
func (s *CatalogService) AllCoupons(ctx context.Context) []domain.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out
}

func (s *CatalogService) AllStores(ctx context.Context) []domain.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyStores(s.stores)
}

func (s *CatalogService) AllCategories(ctx context.Context) []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCategories(s.categories)
}

// Stats derives the dashboard aggregates from current state.
func (s *CatalogService) Stats(ctx context.Context) domain.SiteStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.SiteStats{
		TotalCoupons: len(s.coupons),
		TotalStores:  len(s.stores),
	}
	for _, c := range s.coupons {
		stats.TotalClicks += c.ClickCount
		if c.IsFeatured {
			stats.FeaturedCoupons++
		}
	}
	return stats
}

func (s *CatalogService) RecentEvents(ctx context.Context, limit int) ([]domain.EngagementEvent, error) {
	if limit < 1 {
		limit = 20
	}
	return s.events.Recent(ctx, limit)
}

// ReplaceCoupons overwrites the entire coupon collection and persists it
// immediately, matching the admin dashboard's whole-collection edit handle.
func (s *CatalogService) ReplaceCoupons(ctx context.Context, coupons []domain.Coupon) error {
	next := make([]domain.Coupon, len(coupons))
	copy(next, coupons)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.coupons = next
	return s.persist(ctx, next)
}

var _ ports.AdminService = (*CatalogService)(nil)
