package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

// Проверка, что WishlistStore удовлетворяет интерфейсу WishlistStore.
var _ ports.WishlistStore = (*WishlistStore)(nil)

type wishlistSnapshot struct {
	Items []domain.WishlistItem `json:"items"`
}

// WishlistStore — локальное зеркало отложенных товаров.
// Инвариант: уникальность по product id; повторное добавление — no-op.
type WishlistStore struct {
	mu    sync.Mutex
	items []domain.WishlistItem

	state ports.StateStore
	log   ports.Logger
}

// NewWishlistStore — конструктор с восстановлением снапшота.
func NewWishlistStore(ctx context.Context, state ports.StateStore, log ports.Logger) *WishlistStore {
	s := &WishlistStore{state: state, log: log}
	s.restore(ctx)
	return s
}

// Add — идемпотентная вставка; false, если товар уже в списке.
func (s *WishlistStore) Add(ctx context.Context, item domain.WishlistItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			return false
		}
	}
	s.items = append(s.items, item)
	s.persist(ctx)
	return true
}

// Remove — удалить по product id; BackendID может быть ещё не известен.
func (s *WishlistStore) Remove(ctx context.Context, productID string) (domain.WishlistItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return removed, true
		}
	}
	return domain.WishlistItem{}, false
}

// Contains — предикат наличия.
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			return true
		}
	}
	return false
}

// SetAll — полная замена авторитетным списком (после чтения с бэкенда).
func (s *WishlistStore) SetAll(ctx context.Context, items []domain.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]domain.WishlistItem(nil), items...)
	s.persist(ctx)
}

// Update — merge-patch одной записи; false, если запись не найдена.
func (s *WishlistStore) Update(ctx context.Context, productID string, patch domain.WishlistUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		if patch.BackendID != nil {
			s.items[i].BackendID = *patch.BackendID
		}
		if patch.Name != nil {
			s.items[i].Name = *patch.Name
		}
		if patch.PriceCents != nil {
			s.items[i].PriceCents = *patch.PriceCents
		}
		if patch.ImageURL != nil {
			s.items[i].ImageURL = *patch.ImageURL
		}
		s.persist(ctx)
		return true
	}
	return false
}

// Clear — опустошить список.
func (s *WishlistStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items — копия записей в порядке добавления.
func (s *WishlistStore) Items(_ context.Context) []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WishlistItem(nil), s.items...)
}

func (s *WishlistStore) persist(ctx context.Context) {
	if s.state == nil {
		return
	}
	raw, err := json.Marshal(wishlistSnapshot{Items: s.items})
	if err != nil {
		s.log.Warnf(ctx, "wishlist snapshot marshal failed: %v", err)
		return
	}
	if err := s.state.Save(ctx, ports.StateKeyWishlist, raw); err != nil {
		s.log.Warnf(ctx, "wishlist snapshot save failed: %v", err)
	}
}

func (s *WishlistStore) restore(ctx context.Context) {
	if s.state == nil {
		return
	}
	raw, err := s.state.Load(ctx, ports.StateKeyWishlist)
	if err != nil {
		s.log.Warnf(ctx, "wishlist snapshot load failed: %v", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	var snap wishlistSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Warnf(ctx, "wishlist snapshot corrupted, starting empty: %v", err)
		return
	}
	s.items = snap.Items
}
