package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

var _ ports.AccountGateway = (*Client)(nil)

// ListAddresses — GET /addresses.
func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var resp struct {
		Addresses []domain.Address `json:"addresses"`
	}
	if err := c.do(ctx, http.MethodGet, "/addresses", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Addresses, nil
}

// CreateAddress — POST /addresses.
func (c *Client) CreateAddress(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	var created domain.Address
	if err := c.do(ctx, http.MethodPost, "/addresses", nil, a, &created); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return &created, nil
}

// DeleteAddress — DELETE /addresses/{id}.
func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/addresses/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete address %s: %w", id, err)
	}
	return nil
}

// SendContactMessage — POST /contact.
func (c *Client) SendContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	if err := c.do(ctx, http.MethodPost, "/contact", nil, m, nil); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	return nil
}

type dashboardStatsWire struct {
	ProductsTotal  int   `json:"products_total"`
	OrdersTotal    int   `json:"orders_total"`
	CustomersTotal int   `json:"customers_total"`
	Revenue        int64 `json:"revenue"`
}

// DashboardStats — GET /admin/stats (админ).
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var w dashboardStatsWire
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &w); err != nil {
		return nil, err
	}
	return &domain.DashboardStats{
		ProductsTotal:  w.ProductsTotal,
		OrdersTotal:    w.OrdersTotal,
		CustomersTotal: w.CustomersTotal,
		RevenueCents:   w.Revenue,
	}, nil
}
