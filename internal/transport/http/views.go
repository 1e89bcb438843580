package rest

import (
	"time"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/pkg/money"
)

// Представления для ответов API. Деньги наружу отдаются в мажорных единицах;
// конвертация из минорных происходит только здесь, на границе.

type productView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Sizes       []string  `json:"sizes"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProductView(p *domain.Product) productView {
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category,
		Sizes:       p.Sizes,
		Price:       money.Major(p.PriceCents),
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductViews(ps []domain.Product) []productView {
	out := make([]productView, 0, len(ps))
	for i := range ps {
		out = append(out, toProductView(&ps[i]))
	}
	return out
}

type cartItemView struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
	ImageURL  string  `json:"image_url,omitempty"`
}

type cartView struct {
	Items     []cartItemView `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"item_count"`
	IsOpen    bool           `json:"is_open"`
}

func toCartView(items []domain.CartItem, totalCents int64, itemCount int, isOpen bool) cartView {
	views := make([]cartItemView, 0, len(items))
	for _, it := range items {
		views = append(views, cartItemView{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Price:     money.Major(it.PriceCents),
			Quantity:  it.Quantity,
			LineTotal: money.Major(it.PriceCents * int64(it.Quantity)),
			ImageURL:  it.ImageURL,
		})
	}
	return cartView{
		Items:     views,
		Total:     money.Major(totalCents),
		ItemCount: itemCount,
		IsOpen:    isOpen,
	}
}

type wishlistItemView struct {
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url,omitempty"`
	AddedAt   time.Time `json:"added_at"`
	Synced    bool      `json:"synced"`
}

func toWishlistViews(items []domain.WishlistItem) []wishlistItemView {
	out := make([]wishlistItemView, 0, len(items))
	for _, it := range items {
		out = append(out, wishlistItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     money.Major(it.PriceCents),
			ImageURL:  it.ImageURL,
			AddedAt:   it.AddedAt,
			Synced:    it.BackendID != "",
		})
	}
	return out
}

type orderItemView struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderView struct {
	ID        string          `json:"id"`
	Items     []orderItemView `json:"items"`
	Total     float64         `json:"total"`
	Status    string          `json:"status"`
	AddressID string          `json:"address_id"`
	CreatedAt time.Time       `json:"created_at"`
}

func toOrderView(o *domain.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Price:     money.Major(it.PriceCents),
			Quantity:  it.Quantity,
		})
	}
	return orderView{
		ID:        o.ID,
		Items:     items,
		Total:     money.Major(o.TotalCents),
		Status:    o.Status,
		AddressID: o.AddressID,
		CreatedAt: o.CreatedAt,
	}
}

func toOrderViews(os []domain.Order) []orderView {
	out := make([]orderView, 0, len(os))
	for i := range os {
		out = append(out, toOrderView(&os[i]))
	}
	return out
}

type statsView struct {
	ProductsTotal  int     `json:"products_total"`
	OrdersTotal    int     `json:"orders_total"`
	CustomersTotal int     `json:"customers_total"`
	Revenue        float64 `json:"revenue"`
}

func toStatsView(s *domain.DashboardStats) statsView {
	return statsView{
		ProductsTotal:  s.ProductsTotal,
		OrdersTotal:    s.OrdersTotal,
		CustomersTotal: s.CustomersTotal,
		Revenue:        money.Major(s.RevenueCents),
	}
}
