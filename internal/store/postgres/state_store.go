// Пакет postgres — реализация StateStore поверх Postgres (pgxpool):
// вариант «серверного» хранения клиентского состояния, подставляемый
// вместо файлового через конфигурацию.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkarpushin/shopfront/internal/ports"
)

// Проверка, что StateStore удовлетворяет интерфейсу StateStore.
var _ ports.StateStore = (*StateStore)(nil)

type StateStore struct {
	pool *pgxpool.Pool
}

// NewStateStore — конструктор StateStore.
func NewStateStore(pool *pgxpool.Pool) *StateStore { return &StateStore{pool: pool} }

// Load — (nil, nil), если снапшота нет.
func (s *StateStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `
		SELECT data FROM client_state WHERE key = $1
	`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select state %q: %w", key, err)
	}
	return data, nil
}

// Save — идемпотентный upsert по ключу.
func (s *StateStore) Save(ctx context.Context, key string, data []byte) error {
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO client_state (key, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = now()
	`, key, data); err != nil {
		return fmt.Errorf("upsert state %q: %w", key, err)
	}
	return nil
}

// Delete — отсутствие строки не считается ошибкой.
func (s *StateStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM client_state WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}
