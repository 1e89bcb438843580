package ports

import "context"

// Ключи снапшотов состояния (аналог ключей browser storage):
// каждый стор персистится и инвалидируется независимо.
const (
	StateKeyCart     = "cart"
	StateKeyWishlist = "wishlist"
	StateKeySession  = "session"
)

// StateStore — персистентность снапшотов сторов в виде сырого JSON.
// Реализации: файловая (по умолчанию) и Postgres (серверное хранение состояния).
type StateStore interface {
	// Load — (nil, nil), если снапшота нет.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
