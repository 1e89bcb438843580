package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mkarpushin/shopfront/internal/domain"
)

func products(names ...string) []domain.Product {
	out := make([]domain.Product, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Product{ID: n, Name: n, Sizes: []string{"M"}})
	}
	return out
}

func TestProductCache_SetGet_HitMiss(t *testing.T) {
	c := NewProductQueryCache(4, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, "k1"); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	c.Set(ctx, "k1", products("p1", "p2"))
	got, ok := c.Get(ctx, "k1")
	if !ok || len(got) != 2 || got[0].ID != "p1" {
		t.Fatalf("expected hit with 2 products, got ok=%v list=%v", ok, got)
	}
}

func TestProductCache_TTLExpiry(t *testing.T) {
	c := NewProductQueryCache(4, 100*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "ttl", products("p1"))
	if _, ok := c.Get(ctx, "ttl"); !ok {
		t.Fatalf("expected hit right after Set")
	}
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "ttl"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

// Чтение не продлевает жизнь записи: истечение отсчитывается от момента Set.
func TestProductCache_GetDoesNotRefreshTTL(t *testing.T) {
	c := NewProductQueryCache(4, 120*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "k", products("p1"))
	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get(ctx, "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}
	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatalf("read must not extend TTL: entry should be expired")
	}
}

func TestProductCache_InvalidateAll(t *testing.T) {
	c := NewProductQueryCache(4, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "a", products("p1"))
	c.Set(ctx, "b", products("p2"))
	c.InvalidateAll(ctx)

	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatalf("expected miss for a after InvalidateAll")
	}
	if _, ok := c.Get(ctx, "b"); ok {
		t.Fatalf("expected miss for b after InvalidateAll")
	}
}

func TestProductCache_LRUEviction(t *testing.T) {
	c := NewProductQueryCache(2, 0) // 0 = без TTL
	ctx := context.Background()

	c.Set(ctx, "A", products("p1"))
	c.Set(ctx, "B", products("p2"))
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	c.Set(ctx, "C", products("p3"))

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestProductCache_CloneImmutability(t *testing.T) {
	c := NewProductQueryCache(2, 0)
	ctx := context.Background()
	c.Set(ctx, "Z", products("p1"))

	// меняем то, что вернул Get — не должно влиять на кэш
	got1, _ := c.Get(ctx, "Z")
	got1[0].Name = "changed"
	got1[0].Sizes[0] = "XXL"

	got2, _ := c.Get(ctx, "Z")
	if got2[0].Name == "changed" || got2[0].Sizes[0] == "XXL" {
		t.Fatalf("cache should return clones, not internal state")
	}
}
