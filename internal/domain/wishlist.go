package domain

import "time"

// WishlistItem — отложенный товар.
// BackendID заполняется только после подтверждения бэкендом: запись может
// существовать локально раньше, чем известен серверный идентификатор.
type WishlistItem struct {
	ProductID  string    `json:"product_id"`
	BackendID  string    `json:"backend_id,omitempty"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	ImageURL   string    `json:"image_url,omitempty"`
	AddedAt    time.Time `json:"added_at"`
}

// WishlistUpdate — частичное обновление записи (merge-patch).
// nil-поле означает «не менять».
type WishlistUpdate struct {
	BackendID  *string
	Name       *string
	PriceCents *int64
	ImageURL   *string
}
