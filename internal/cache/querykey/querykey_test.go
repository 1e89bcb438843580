package querykey_test

import (
	"testing"

	"github.com/mkarpushin/shopfront/internal/cache/querykey"
	"github.com/mkarpushin/shopfront/internal/domain"
)

func int64p(v int64) *int64 { return &v }

// Детерминизм: порядок элементов в списках не влияет на ключ.
func TestKey_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := &domain.ProductFilter{
		Categories: []string{"b", "a"},
		Brands:     []string{"nike", "adidas"},
		Sizes:      []string{"XL", "M"},
	}
	b := &domain.ProductFilter{
		Categories: []string{"a", "b"},
		Brands:     []string{"adidas", "nike"},
		Sizes:      []string{"M", "XL"},
	}
	if querykey.Key(a) != querykey.Key(b) {
		t.Fatalf("keys differ for equivalent filters:\n%s\n%s", querykey.Key(a), querykey.Key(b))
	}
}

// nil, пустой фильтр и фильтр с пустыми срезами — один и тот же ключ.
func TestKey_AbsentVsEmpty(t *testing.T) {
	t.Parallel()

	empty := &domain.ProductFilter{}
	withEmpty := &domain.ProductFilter{Categories: []string{}, Search: "   "}

	k := querykey.Key(nil)
	if querykey.Key(empty) != k {
		t.Fatalf("empty filter key differs from nil key")
	}
	if querykey.Key(withEmpty) != k {
		t.Fatalf("filter with empty slices and blank search differs from nil key")
	}
}

// Чувствительность: изменение любого нормализованного поля меняет ключ.
func TestKey_Sensitivity(t *testing.T) {
	t.Parallel()

	base := &domain.ProductFilter{Search: "shoe", SortBy: domain.SortNewest}
	variants := []*domain.ProductFilter{
		{Search: "shoes", SortBy: domain.SortNewest},
		{Search: "shoe", SortBy: domain.SortPriceAsc},
		{Search: "shoe", SortBy: domain.SortNewest, MinPriceCents: int64p(100)},
		{Search: "shoe", SortBy: domain.SortNewest, MaxPriceCents: int64p(5000)},
		{Search: "shoe", SortBy: domain.SortNewest, Categories: []string{"boots"}},
	}

	baseKey := querykey.Key(base)
	for i, v := range variants {
		if querykey.Key(v) == baseKey {
			t.Fatalf("variant %d produced the same key as base", i)
		}
	}
}

// Дефолт сортировки: отсутствующий sort_by эквивалентен "newest".
func TestKey_SortByDefault(t *testing.T) {
	t.Parallel()

	if querykey.Key(&domain.ProductFilter{}) != querykey.Key(&domain.ProductFilter{SortBy: domain.SortNewest}) {
		t.Fatalf("missing sort_by should default to newest")
	}
}

// Вход не мутируется: срезы фильтра остаются в исходном порядке.
func TestKey_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	f := &domain.ProductFilter{Categories: []string{"z", "a", "m"}}
	_ = querykey.Key(f)

	if f.Categories[0] != "z" || f.Categories[1] != "a" || f.Categories[2] != "m" {
		t.Fatalf("input slice was mutated: %v", f.Categories)
	}
}

func BenchmarkKey(b *testing.B) {
	f := &domain.ProductFilter{
		Search:        "sneakers",
		Categories:    []string{"shoes", "sport"},
		Brands:        []string{"nike", "puma", "adidas"},
		Sizes:         []string{"41", "42", "43"},
		MinPriceCents: int64p(1000),
		MaxPriceCents: int64p(150000),
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = querykey.Key(f)
	}
}
