// Пакет memory — in-memory сторы клиентского состояния (корзина, отложенные,
// сессия). Единственный пишущий поток — UI-процесс; мутации синхронные и
// атомарные, персистентность — fire-and-forget через ports.StateStore.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

// Проверка, что CartStore удовлетворяет интерфейсу CartStore.
var _ ports.CartStore = (*CartStore)(nil)

// cartSnapshot — персистится только содержимое; флаг видимости панели — нет.
type cartSnapshot struct {
	Items []domain.CartItem `json:"items"`
}

// CartStore — авторитетное состояние корзины.
// Инвариант: не более одной строки на пару (товар, размер).
type CartStore struct {
	mu    sync.Mutex
	items []domain.CartItem
	open  bool

	state ports.StateStore
	log   ports.Logger
}

// NewCartStore — конструктор с восстановлением снапшота.
// Повреждённый или отсутствующий снапшот даёт пустую корзину.
func NewCartStore(ctx context.Context, state ports.StateStore, log ports.Logger) *CartStore {
	s := &CartStore{state: state, log: log}
	s.restore(ctx)
	return s
}

// Add — добавить позицию; существующая пара (товар, размер) сливается
// увеличением количества — центральное бизнес-правило корзины.
func (s *CartStore) Add(ctx context.Context, item domain.CartItem) {
	item.ID = domain.CartLineID(item.ProductID, item.Size)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, item)
	s.persist(ctx)
}

// Remove — удалить строку; отсутствующая строка — no-op без записи снапшота.
func (s *CartStore) Remove(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity — перезаписать количество строки. Значение не ограничивается
// снизу: интерпретация нуля/отрицательных — ответственность вызывающего.
func (s *CartStore) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear — опустошить корзину.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items — копия строк в порядке добавления.
func (s *CartStore) Items(_ context.Context) []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

// Total — сумма price*quantity; вычисляется на каждый вызов (N невелико).
func (s *CartStore) Total(_ context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for i := range s.items {
		total += s.items[i].PriceCents * int64(s.items[i].Quantity)
	}
	return total
}

// ItemCount — суммарное количество единиц товара.
func (s *CartStore) ItemCount(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.items {
		count += s.items[i].Quantity
	}
	return count
}

// Toggle — переключить видимость панели корзины; возвращает новое состояние.
func (s *CartStore) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

// Close — скрыть панель корзины.
func (s *CartStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// IsOpen — текущее состояние панели.
func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// persist — записать снапшот; вызывается под мьютексом, ошибки только логируются.
func (s *CartStore) persist(ctx context.Context) {
	if s.state == nil {
		return
	}
	raw, err := json.Marshal(cartSnapshot{Items: s.items})
	if err != nil {
		s.log.Warnf(ctx, "cart snapshot marshal failed: %v", err)
		return
	}
	if err := s.state.Save(ctx, ports.StateKeyCart, raw); err != nil {
		s.log.Warnf(ctx, "cart snapshot save failed: %v", err)
	}
}

// restore — загрузить снапшот при создании стора.
func (s *CartStore) restore(ctx context.Context) {
	if s.state == nil {
		return
	}
	raw, err := s.state.Load(ctx, ports.StateKeyCart)
	if err != nil {
		s.log.Warnf(ctx, "cart snapshot load failed: %v", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	var snap cartSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.log.Warnf(ctx, "cart snapshot corrupted, starting empty: %v", err)
		return
	}
	s.items = snap.Items
}
