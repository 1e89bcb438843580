package ports

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// OrderCache — короткоживущий кэш списков заказов; ключ — идентификатор пользователя.
// Требования к реализации: потокобезопасность; ленивое истечение TTL; возврат копий.
type OrderCache interface {
	Get(ctx context.Context, userID string) ([]domain.Order, bool)
	Set(ctx context.Context, userID string, orders []domain.Order)

	// Invalidate — сброс записи одного пользователя (после его мутации заказа).
	Invalidate(ctx context.Context, userID string)

	// InvalidateAll — сброс всех записей (админ-мутации затрагивают чужих пользователей).
	InvalidateAll(ctx context.Context)
}
