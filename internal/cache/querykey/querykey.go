// Пакет querykey — вывод канонического ключа кэша из параметров запроса каталога.
// Семантически одинаковые запросы (независимо от порядка элементов в фильтрах,
// отсутствующих и пустых полей) дают один и тот же ключ байт-в-байт.
package querykey

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// normalized — каноническая форма фильтра. Порядок полей фиксирован структурой,
// поэтому json.Marshal даёт детерминированную сериализацию.
type normalized struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Sizes      []string `json:"sizes"`
	MinPrice   *int64   `json:"min_price"`
	MaxPrice   *int64   `json:"max_price"`
	SortBy     string   `json:"sort_by"`
}

// Key — канонический ключ кэша для фильтра. Чистая функция: вход не мутируется,
// nil-фильтр эквивалентен пустому.
func Key(f *domain.ProductFilter) string {
	n := normalize(f)
	raw, err := json.Marshal(n)
	if err != nil {
		// normalized состоит из сериализуемых типов; Marshal не может упасть.
		panic("querykey: marshal normalized filter: " + err.Error())
	}
	return string(raw)
}

// normalize — приведение фильтра к канонической форме:
// search обрезается, списки сортируются по копиям, sort_by получает дефолт.
func normalize(f *domain.ProductFilter) normalized {
	n := normalized{
		Search:     "",
		Categories: []string{},
		Brands:     []string{},
		Sizes:      []string{},
		SortBy:     domain.SortNewest,
	}
	if f == nil {
		return n
	}

	n.Search = strings.TrimSpace(f.Search)
	n.Categories = sortedCopy(f.Categories)
	n.Brands = sortedCopy(f.Brands)
	n.Sizes = sortedCopy(f.Sizes)
	n.MinPrice = f.MinPriceCents
	n.MaxPrice = f.MaxPriceCents
	if f.SortBy != "" {
		n.SortBy = f.SortBy
	}
	return n
}

// sortedCopy — отсортированная копия; исходный срез не трогаем,
// nil и пустой срез дают одинаковый результат.
func sortedCopy(xs []string) []string {
	if len(xs) == 0 {
		return []string{}
	}
	cp := append([]string(nil), xs...)
	sort.Strings(cp)
	return cp
}
