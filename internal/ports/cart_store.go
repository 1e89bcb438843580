package ports

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// CartStore — авторитетное состояние корзины текущего пользователя.
// Все операции тотальны (ошибок не возвращают); персистентность — fire-and-forget.
// Флаг видимости панели корзины хранится только в памяти и не персистится.
type CartStore interface {
	// Add — добавить позицию. ID выводится из (product, size); существующая
	// пара увеличивает количество вместо дублирования строки.
	Add(ctx context.Context, item domain.CartItem)

	// Remove — удалить строку по ID; отсутствующая строка — no-op.
	Remove(ctx context.Context, lineID string)

	// UpdateQuantity — перезаписать количество без ограничения снизу
	// (валидация значений — забота вызывающей стороны).
	UpdateQuantity(ctx context.Context, lineID string, quantity int)

	// Clear — опустошить корзину.
	Clear(ctx context.Context)

	// Items — копия строк корзины в порядке добавления.
	Items(ctx context.Context) []domain.CartItem

	// Total — сумма price*quantity по всем строкам, в минорных единицах.
	Total(ctx context.Context) int64

	// ItemCount — суммарное количество единиц товара.
	ItemCount(ctx context.Context) int

	// Toggle/Close/IsOpen — флаг видимости панели (UI-состояние, без персистентности).
	Toggle() bool
	Close()
	IsOpen() bool
}
