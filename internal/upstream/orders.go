package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

var _ ports.OrderGateway = (*Client)(nil)

type orderItemWire struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type orderWire struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []orderItemWire `json:"items"`
	Total     int64           `json:"total"`
	Status    string          `json:"status"`
	AddressID string          `json:"address_id"`
	PaymentID string          `json:"payment_id"`
	CreatedAt time.Time       `json:"created_at"`
}

func (w *orderWire) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, domain.OrderItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Size:       it.Size,
			PriceCents: it.Price,
			Quantity:   it.Quantity,
		})
	}
	return domain.Order{
		ID:         w.ID,
		UserID:     w.UserID,
		Items:      items,
		TotalCents: w.Total,
		Status:     w.Status,
		AddressID:  w.AddressID,
		PaymentID:  w.PaymentID,
		CreatedAt:  w.CreatedAt,
	}
}

type createOrderRequest struct {
	AddressID string          `json:"address_id"`
	Items     []orderItemWire `json:"items"`
}

type listOrdersResponse struct {
	Orders []orderWire `json:"orders"`
}

// CreateOrder — POST /orders из черновика (содержимое корзины + адрес).
func (c *Client) CreateOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error) {
	req := createOrderRequest{AddressID: draft.AddressID}
	for _, it := range draft.Items {
		req.Items = append(req.Items, orderItemWire{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Price:     it.PriceCents,
			Quantity:  it.Quantity,
		})
	}

	var w orderWire
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &w); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order := w.toDomain()
	return &order, nil
}

// GetOrder — GET /orders/{id}.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var w orderWire
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &w); err != nil {
		return nil, err
	}
	order := w.toDomain()
	return &order, nil
}

// ListOrders — GET /orders: заказы текущего пользователя.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var resp listOrdersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &resp); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(resp.Orders))
	for i := range resp.Orders {
		orders = append(orders, resp.Orders[i].toDomain())
	}
	return orders, nil
}

// UpdateOrderStatus — PATCH /orders/{id}/status (админ).
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	path := "/orders/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPatch, path, nil, body, nil); err != nil {
		return fmt.Errorf("update order %s status: %w", id, err)
	}
	return nil
}

// CancelOrder — POST /orders/{id}/cancel.
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	path := "/orders/" + url.PathEscape(id) + "/cancel"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return fmt.Errorf("cancel order %s: %w", id, err)
	}
	return nil
}

// RefundOrder — POST /orders/{id}/refund (админ).
func (c *Client) RefundOrder(ctx context.Context, id string) error {
	path := "/orders/" + url.PathEscape(id) + "/refund"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, nil); err != nil {
		return fmt.Errorf("refund order %s: %w", id, err)
	}
	return nil
}
