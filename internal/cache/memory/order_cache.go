package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/pkg/metrics"
)

const orderCacheName = "orders"

// Проверка, что OrderListCache удовлетворяет интерфейсу OrderCache.
var _ ports.OrderCache = (*OrderListCache)(nil)

type orderEntry struct {
	userID    string
	orders    []domain.Order
	expiresAt time.Time
}

// OrderListCache — короткоживущий кэш списков заказов по пользователю.
// Та же дисциплина, что у кэша каталога: фиксированный TTL от момента записи,
// ленивое истечение, LRU-ограничение размера.
type OrderListCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewOrderListCache — конструктор; capacity <= 0 трактуется как 1.
func NewOrderListCache(capacity int, ttl time.Duration) *OrderListCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &OrderListCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — список заказов пользователя; просроченная запись эквивалентна промаху.
func (c *OrderListCache) Get(_ context.Context, userID string) ([]domain.Order, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[userID]
	if !ok {
		metrics.CacheOps.WithLabelValues(orderCacheName, "miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*orderEntry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues(orderCacheName, "expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.WithLabelValues(orderCacheName).Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues(orderCacheName, "hit").Inc()
	return cloneOrders(ent.orders), true
}

// Set — безусловная (пере)запись списка для пользователя.
func (c *OrderListCache) Set(_ context.Context, userID string, orders []domain.Order) {
	if userID == "" {
		return
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[userID]; ok {
		ent := elem.Value.(*orderEntry)
		ent.orders = cloneOrders(orders)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	elem := c.ll.PushFront(&orderEntry{
		userID:    userID,
		orders:    cloneOrders(orders),
		expiresAt: c.expiryFrom(now),
	})
	c.index[userID] = elem

	if c.ll.Len() > c.capacity {
		if back := c.ll.Back(); back != nil {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues(orderCacheName, "evicted").Inc()
		}
	}
	metrics.CacheSize.WithLabelValues(orderCacheName).Set(float64(len(c.index)))
}

// Invalidate — сброс записи одного пользователя; отсутствующая запись — no-op.
func (c *OrderListCache) Invalidate(_ context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[userID]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues(orderCacheName, "invalidate").Inc()
		metrics.CacheSize.WithLabelValues(orderCacheName).Set(float64(len(c.index)))
	}
}

// InvalidateAll — сброс всех записей.
func (c *OrderListCache) InvalidateAll(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.index = make(map[string]*list.Element)

	metrics.CacheOps.WithLabelValues(orderCacheName, "invalidate").Inc()
	metrics.CacheSize.WithLabelValues(orderCacheName).Set(0)
}

func (c *OrderListCache) removeElement(elem *list.Element) {
	ent := elem.Value.(*orderEntry)
	delete(c.index, ent.userID)
	c.ll.Remove(elem)
}

func (c *OrderListCache) isExpired(ent *orderEntry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return !now.Before(ent.expiresAt)
}

func (c *OrderListCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// cloneOrders — копия списка вместе с позициями заказов.
func cloneOrders(orders []domain.Order) []domain.Order {
	if orders == nil {
		return nil
	}
	cloned := append([]domain.Order(nil), orders...)
	for i := range cloned {
		if cloned[i].Items != nil {
			cloned[i].Items = append([]domain.OrderItem(nil), cloned[i].Items...)
		}
	}
	return cloned
}
