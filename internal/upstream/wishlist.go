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

var _ ports.WishlistGateway = (*Client)(nil)

type wishlistItemWire struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	ImageURL  string    `json:"image_url"`
	AddedAt   time.Time `json:"added_at"`
}

func (w *wishlistItemWire) toDomain() domain.WishlistItem {
	return domain.WishlistItem{
		ProductID:  w.ProductID,
		BackendID:  w.ID,
		Name:       w.Name,
		PriceCents: w.Price,
		ImageURL:   w.ImageURL,
		AddedAt:    w.AddedAt,
	}
}

// AddToWishlist — POST /wishlist; возвращает серверный идентификатор записи,
// который затем привязывается к локальной записи.
func (c *Client) AddToWishlist(ctx context.Context, productID string) (string, error) {
	body := struct {
		ProductID string `json:"product_id"`
	}{ProductID: productID}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/wishlist", nil, body, &resp); err != nil {
		return "", fmt.Errorf("add to wishlist: %w", err)
	}
	return resp.ID, nil
}

// ListWishlist — GET /wishlist: серверная версия списка для сверки.
func (c *Client) ListWishlist(ctx context.Context) ([]domain.WishlistItem, error) {
	var resp struct {
		Items []wishlistItemWire `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, nil, &resp); err != nil {
		return nil, err
	}
	items := make([]domain.WishlistItem, 0, len(resp.Items))
	for i := range resp.Items {
		items = append(items, resp.Items[i].toDomain())
	}
	return items, nil
}

// RemoveFromWishlist — DELETE /wishlist/{backendID}.
func (c *Client) RemoveFromWishlist(ctx context.Context, backendID string) error {
	path := "/wishlist/" + url.PathEscape(backendID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}
