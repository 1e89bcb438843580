// Пакет file — файловая реализация StateStore: один JSON-файл на ключ
// в каталоге данных. Аналог browser storage: сторы персистятся и
// инвалидируются независимо друг от друга.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkarpushin/shopfront/internal/ports"
)

// Проверка, что StateStore удовлетворяет интерфейсу StateStore.
var _ ports.StateStore = (*StateStore)(nil)

type StateStore struct {
	dir string
}

// NewStateStore — создаёт каталог данных при необходимости.
func NewStateStore(dir string) (*StateStore, error) {
	if dir == "" {
		return nil, errors.New("state dir is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &StateStore{dir: dir}, nil
}

// Load — (nil, nil), если файла нет.
func (s *StateStore) Load(_ context.Context, key string) ([]byte, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state %q: %w", key, err)
	}
	return raw, nil
}

// Save — запись через временный файл и rename, чтобы не оставлять
// полузаписанный снапшот при падении процесса.
func (s *StateStore) Save(_ context.Context, key string, data []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write state %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("rename state %q: %w", key, err)
	}
	return nil
}

// Delete — отсутствие файла не считается ошибкой.
func (s *StateStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete state %q: %w", key, err)
	}
	return nil
}

// path — ключи фиксированы кодом, но Base защищает от путей в ключе.
func (s *StateStore) path(key string) string {
	return filepath.Join(s.dir, filepath.Base(key)+".json")
}
