package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/wadjakorntonsri/go-coupon-site/pkg/core/domain"
)

func newTestRepo(t *testing.T, name string) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}
	return repo
}

func TestKVRoundTrip(t *testing.T) {
	repo := newTestRepo(t, "kvtest1")
	ctx := context.Background()

	// Missing key reads as absent, not as an error
	if _, ok, err := repo.Read(ctx, "gc_coupons"); err != nil || ok {
		t.Fatalf("Missing key: got ok=%v err=%v, want absent", ok, err)
	}

	if err := repo.Write(ctx, "gc_coupons", `[{"id":"c1"}]`); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	value, ok, err := repo.Read(ctx, "gc_coupons")
	if err != nil || !ok {
		t.Fatalf("Read failed: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"c1"}]` {
		t.Errorf("Read value: got %q", value)
	}

	// Writes are wholesale overwrites
	if err := repo.Write(ctx, "gc_coupons", `[]`); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}
	value, _, _ = repo.Read(ctx, "gc_coupons")
	if value != `[]` {
		t.Errorf("Overwritten value: got %q", value)
	}

	if err := repo.Delete(ctx, "gc_coupons"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := repo.Read(ctx, "gc_coupons"); ok {
		t.Error("Key still present after delete")
	}
}

func TestKVKeysAreIndependent(t *testing.T) {
	repo := newTestRepo(t, "kvtest2")
	ctx := context.Background()

	if err := repo.Write(ctx, "gc_coupons", "[]"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Write(ctx, "gc_admin_auth", "true"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "gc_admin_auth"); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := repo.Read(ctx, "gc_coupons"); !ok {
		t.Error("Deleting one key affected another")
	}
}

func TestEngagementLog(t *testing.T) {
	repo := newTestRepo(t, "kvtest3")
	ctx := context.Background()

	for i, kind := range []string{domain.EngagementClick, domain.EngagementCopy, domain.EngagementClick} {
		ev := &domain.EngagementEvent{
			CouponID:  "c1",
			Kind:      kind,
			UserAgent: "test-agent",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := repo.Record(ctx, ev); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		if ev.ID == 0 {
			t.Error("Record did not assign an ID")
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Recent limit: got %d events, want 2", len(events))
	}
	// Newest first
	if events[0].ID <= events[1].ID {
		t.Errorf("Recent order: got IDs %d, %d, want descending", events[0].ID, events[1].ID)
	}
	if events[0].Kind != domain.EngagementClick {
		t.Errorf("Newest event kind: got %s, want click", events[0].Kind)
	}
}
