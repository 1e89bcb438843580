package ports

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// WishlistStore — локальное зеркало отложенных товаров, оптимистично
// обновляемое до подтверждения бэкендом.
type WishlistStore interface {
	// Add — идемпотентная вставка по product id; false, если запись уже была.
	Add(ctx context.Context, item domain.WishlistItem) bool

	// Remove — удалить по product id независимо от того, известен ли BackendID.
	// Возвращает удалённую запись (для отката) и признак наличия.
	Remove(ctx context.Context, productID string) (domain.WishlistItem, bool)

	// Contains — предикат наличия по product id.
	Contains(productID string) bool

	// SetAll — полная замена авторитетным списком с бэкенда (reconciliation).
	SetAll(ctx context.Context, items []domain.WishlistItem)

	// Update — merge-patch одной записи (например, проставить BackendID).
	Update(ctx context.Context, productID string, patch domain.WishlistUpdate) bool

	// Clear — опустошить список.
	Clear(ctx context.Context)

	// Items — копия записей в порядке добавления.
	Items(ctx context.Context) []domain.WishlistItem
}
