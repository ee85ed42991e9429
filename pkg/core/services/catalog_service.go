package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/ports"
	"github.com/wadjakorntonsri/go-coupon-site/pkg/seed"
)

// CatalogService owns the catalog state: stores and categories are
// immutable after seeding, coupons are seeded and then overridden by any
// valid persisted copy found under the coupons key. All mutations run
// under a single mutex so state changes stay serialized regardless of how
// many requests are in flight.
type CatalogService struct {
	mu         sync.RWMutex
	stores     []domain.Store
	categories []domain.Category
	coupons    []domain.Coupon

	kv     ports.KVStore
	events ports.EngagementLog
}

func NewCatalogService(ctx context.Context, kv ports.KVStore, events ports.EngagementLog) (*CatalogService, error) {
	s := &CatalogService{
		stores:     seed.Stores(),
		categories: seed.Categories(),
		coupons:    seed.Coupons(),
		kv:         kv,
		events:     events,
	}

	raw, ok, err := kv.Read(ctx, ports.CouponsKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var saved []domain.Coupon
		if err := json.Unmarshal([]byte(raw), &saved); err != nil {
			// Fail soft: discard the malformed value, keep the seed and
			// re-persist a clean copy.
			log.Printf("Discarding malformed persisted coupons: %v", err)
			if err := s.persist(ctx, s.coupons); err != nil {
				return nil, err
			}
		} else {
			// Persisted state wins over seed, whole-collection.
			s.coupons = saved
		}
	}

	return s, nil
}

func (s *CatalogService) persist(ctx context.Context, coupons []domain.Coupon) error {
	data, err := json.Marshal(coupons)
	if err != nil {
		return err
	}
	return s.kv.Write(ctx, ports.CouponsKey, string(data))
}

// Home returns the active coupons plus the full store and category lists.
func (s *CatalogService) Home(ctx context.Context) ([]domain.Coupon, []domain.Store, []domain.Category) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return activeCoupons(s.coupons), copyStores(s.stores), copyCategories(s.categories)
}

// StoreView looks up a store by slug and returns it with its active
// coupons. A nil store signals "not found".
func (s *CatalogService) StoreView(ctx context.Context, slug string) (*domain.Store, []domain.Coupon) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var store *domain.Store
	for i := range s.stores {
		if s.stores[i].Slug == slug {
			st := s.stores[i]
			store = &st
			break
		}
	}
	if store == nil {
		return nil, nil
	}

	var coupons []domain.Coupon
	for _, c := range s.coupons {
		if c.IsActive && c.StoreID == store.ID {
			coupons = append(coupons, c)
		}
	}
	return store, coupons
}

// CategoryView looks up a category by slug and returns it with its active
// coupons and the full store list for display context.
func (s *CatalogService) CategoryView(ctx context.Context, slug string) (*domain.Category, []domain.Coupon, []domain.Store) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var category *domain.Category
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			cat := s.categories[i]
			category = &cat
			break
		}
	}
	if category == nil {
		return nil, nil, nil
	}

	var coupons []domain.Coupon
	for _, c := range s.coupons {
		if c.IsActive && c.CategoryID == category.ID {
			coupons = append(coupons, c)
		}
	}
	return category, coupons, copyStores(s.stores)
}

// Search matches active coupons whose title or owning store's name
// contains the query as a case-insensitive substring. A coupon with a
// dangling store reference can still match on its title.
func (s *CatalogService) Search(ctx context.Context, query string) []domain.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	storeNames := make(map[string]string, len(s.stores))
	for _, st := range s.stores {
		storeNames[st.ID] = strings.ToLower(st.Name)
	}

	var matches []domain.Coupon
	for _, c := range s.coupons {
		if !c.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(c.Title), q) {
			matches = append(matches, c)
			continue
		}
		if name, ok := storeNames[c.StoreID]; ok && strings.Contains(name, q) {
			matches = append(matches, c)
		}
	}
	return matches
}

func (s *CatalogService) TrackClick(ctx context.Context, couponID, referer, userAgent string) error {
	return s.track(ctx, couponID, domain.EngagementClick, referer, userAgent)
}

func (s *CatalogService) TrackCopy(ctx context.Context, couponID, referer, userAgent string) error {
	return s.track(ctx, couponID, domain.EngagementCopy, referer, userAgent)
}

// track increments exactly one counter of exactly one coupon, replaces
// the collection and persists it wholesale. Unknown IDs are a true
// no-op: no new collection, no write, no event row.
func (s *CatalogService) track(ctx context.Context, couponID, kind, referer, userAgent string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.coupons {
		if s.coupons[i].ID == couponID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return nil
	}

	next := make([]domain.Coupon, len(s.coupons))
	copy(next, s.coupons)
	switch kind {
	case domain.EngagementClick:
		next[idx].ClickCount++
	case domain.EngagementCopy:
		next[idx].CopyCount++
	}
	s.coupons = next

	err := s.persist(ctx, next)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	// History only; the counter is already persisted, so a failed event
	// insert is not worth failing the request over.
	_ = s.events.Record(ctx, &domain.EngagementEvent{
		CouponID:  couponID,
		Kind:      kind,
		Referer:   referer,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	})
	return nil
}

func activeCoupons(coupons []domain.Coupon) []domain.Coupon {
	var out []domain.Coupon
	for _, c := range coupons {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func copyStores(stores []domain.Store) []domain.Store {
	out := make([]domain.Store, len(stores))
	copy(out, stores)
	return out
}

func copyCategories(categories []domain.Category) []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

var _ ports.CatalogService = (*CatalogService)(nil)
