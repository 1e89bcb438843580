package ports

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// ProductCache — кэш результатов запросов каталога по каноническому ключу.
// Требования к реализации: потокобезопасность; ленивое истечение TTL
// (просроченная запись эквивалентна промаху); возврат копий данных.
type ProductCache interface {
	// Get — ([]Product, true) при свежем попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) ([]domain.Product, bool)

	// Set — безусловная (пере)запись значения со свежей меткой времени.
	Set(ctx context.Context, key string, products []domain.Product)

	// InvalidateAll — сброс всех записей. Единственный механизм консистентности:
	// после любой админ-мутации каталога кэш сбрасывается целиком.
	InvalidateAll(ctx context.Context)
}
