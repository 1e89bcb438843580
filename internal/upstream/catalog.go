package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

var _ ports.CatalogGateway = (*Client)(nil)

// Wire-структуры повторяют контракт API дословно. Деньги ходят по проводу
// как целые минорные единицы (поле price); пересчёт в мажорные единицы
// выполняется единственный раз на HTTP-границе нашего сервиса.

type productWire struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Sizes       []string  `json:"sizes"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

func (w *productWire) toDomain() domain.Product {
	return domain.Product{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Brand:       w.Brand,
		Category:    w.Category,
		Sizes:       w.Sizes,
		PriceCents:  w.Price,
		ImageURL:    w.ImageURL,
		InStock:     w.InStock,
		CreatedAt:   w.CreatedAt,
	}
}

func productToWire(p *domain.Product) productWire {
	return productWire{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category,
		Sizes:       p.Sizes,
		Price:       p.PriceCents,
		ImageURL:    p.ImageURL,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}

type listProductsResponse struct {
	Products []productWire `json:"products"`
}

type filterMetaResponse struct {
	Categories []domain.Category   `json:"categories"`
	Brands     []domain.Brand      `json:"brands"`
	Sizes      []domain.SizeOption `json:"sizes"`
}

// filterQuery — перевод фильтра в query-параметры; множественные значения
// передаются повторением параметра.
func filterQuery(f *domain.ProductFilter) url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	for _, c := range f.Categories {
		q.Add("category", c)
	}
	for _, b := range f.Brands {
		q.Add("brand", b)
	}
	for _, s := range f.Sizes {
		q.Add("size", s)
	}
	if f.MinPriceCents != nil {
		q.Set("min_price", strconv.FormatInt(*f.MinPriceCents, 10))
	}
	if f.MaxPriceCents != nil {
		q.Set("max_price", strconv.FormatInt(*f.MaxPriceCents, 10))
	}
	if f.SortBy != "" {
		q.Set("sort", f.SortBy)
	}
	return q
}

// ListProducts — GET /products с параметрами фильтра.
func (c *Client) ListProducts(ctx context.Context, f *domain.ProductFilter) ([]domain.Product, error) {
	var resp listProductsResponse
	if err := c.do(ctx, http.MethodGet, "/products", filterQuery(f), nil, &resp); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(resp.Products))
	for i := range resp.Products {
		products = append(products, resp.Products[i].toDomain())
	}
	return products, nil
}

// GetProduct — GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var w productWire
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &w); err != nil {
		return nil, err
	}
	p := w.toDomain()
	return &p, nil
}

// FilterMeta — GET /products/filters: справочники категорий, брендов, размеров.
func (c *Client) FilterMeta(ctx context.Context) (*domain.FilterMeta, error) {
	var resp filterMetaResponse
	if err := c.do(ctx, http.MethodGet, "/products/filters", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &domain.FilterMeta{
		Categories: resp.Categories,
		Brands:     resp.Brands,
		Sizes:      resp.Sizes,
	}, nil
}

// CreateProduct — POST /products (админ).
func (c *Client) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var w productWire
	if err := c.do(ctx, http.MethodPost, "/products", nil, productToWire(p), &w); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	created := w.toDomain()
	return &created, nil
}

// UpdateProduct — PUT /products/{id} (админ).
func (c *Client) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var w productWire
	path := "/products/" + url.PathEscape(p.ID)
	if err := c.do(ctx, http.MethodPut, path, nil, productToWire(p), &w); err != nil {
		return nil, fmt.Errorf("update product %s: %w", p.ID, err)
	}
	updated := w.toDomain()
	return &updated, nil
}

// DeleteProduct — DELETE /products/{id} (админ).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
