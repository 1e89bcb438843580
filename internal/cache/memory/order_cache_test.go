package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mkarpushin/shopfront/internal/domain"
)

func orders(ids ...string) []domain.Order {
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Order{ID: id, Items: []domain.OrderItem{{Name: "x"}}})
	}
	return out
}

func TestOrderCache_SetGet(t *testing.T) {
	c := NewOrderListCache(4, time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "u1"); ok {
		t.Fatalf("expected miss before Set")
	}

	c.Set(ctx, "u1", orders("o1", "o2"))
	got, ok := c.Get(ctx, "u1")
	if !ok || len(got) != 2 {
		t.Fatalf("expected 2 cached orders, got ok=%v n=%d", ok, len(got))
	}
}

func TestOrderCache_TTLExpiry(t *testing.T) {
	c := NewOrderListCache(4, 100*time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "u1", orders("o1"))
	time.Sleep(150 * time.Millisecond)
	if _, ok := c.Get(ctx, "u1"); ok {
		t.Fatalf("expected miss after TTL expires")
	}
}

func TestOrderCache_InvalidateSingleUser(t *testing.T) {
	c := NewOrderListCache(4, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "u1", orders("o1"))
	c.Set(ctx, "u2", orders("o2"))

	c.Invalidate(ctx, "u1")

	if _, ok := c.Get(ctx, "u1"); ok {
		t.Fatalf("expected miss for u1 after Invalidate")
	}
	if _, ok := c.Get(ctx, "u2"); !ok {
		t.Fatalf("u2 entry must survive invalidation of u1")
	}
}

func TestOrderCache_InvalidateAll(t *testing.T) {
	c := NewOrderListCache(4, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "u1", orders("o1"))
	c.Set(ctx, "u2", orders("o2"))
	c.InvalidateAll(ctx)

	if _, ok := c.Get(ctx, "u1"); ok {
		t.Fatalf("expected miss for u1")
	}
	if _, ok := c.Get(ctx, "u2"); ok {
		t.Fatalf("expected miss for u2")
	}
}

func TestOrderCache_CloneImmutability(t *testing.T) {
	c := NewOrderListCache(2, 0)
	ctx := context.Background()
	c.Set(ctx, "u", orders("o1"))

	got1, _ := c.Get(ctx, "u")
	got1[0].Items[0].Name = "changed"

	got2, _ := c.Get(ctx, "u")
	if got2[0].Items[0].Name == "changed" {
		t.Fatalf("cache should return clones, not internal state")
	}
}
