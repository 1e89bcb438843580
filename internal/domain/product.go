package domain

import "time"

// Варианты сортировки каталога. Значения совпадают с параметром sort API.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// Product — товар каталога. Цена хранится в минорных единицах (копейки/центы).
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Sizes       []string  `json:"sizes"`
	PriceCents  int64     `json:"price_cents"`
	ImageURL    string    `json:"image_url"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductFilter — параметры запроса каталога (поиск, фильтры, сортировка).
// Пустой фильтр эквивалентен nil — оба нормализуются к одному ключу кэша.
type ProductFilter struct {
	Search        string
	Categories    []string
	Brands        []string
	Sizes         []string
	MinPriceCents *int64
	MaxPriceCents *int64
	SortBy        string
}

// Category — категория каталога.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Brand — бренд.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SizeOption — доступный размер.
type SizeOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// FilterMeta — справочники для построения фильтров витрины.
type FilterMeta struct {
	Categories []Category   `json:"categories"`
	Brands     []Brand      `json:"brands"`
	Sizes      []SizeOption `json:"sizes"`
}
