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

const productCacheName = "products"

// Проверка, что ProductQueryCache удовлетворяет интерфейсу ProductCache.
var _ ports.ProductCache = (*ProductQueryCache)(nil)

type productEntry struct {
	key       string
	products  []domain.Product
	expiresAt time.Time
}

// ProductQueryCache — LRU-кэш результатов запросов каталога с фиксированным TTL.
// Момент истечения задаётся при записи и НЕ продлевается при чтении:
// запись, вставленная в T, считается отсутствующей начиная с T+TTL.
// Истечение ленивое (обнаруживается при Get), плюс подчистка хвоста при Set —
// кэш ограничен capacity и не растёт бесконечно.
type ProductQueryCache struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewProductQueryCache — конструктор; capacity <= 0 трактуется как 1.
func NewProductQueryCache(capacity int, ttl time.Duration) *ProductQueryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &ProductQueryCache{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — вернуть список по ключу; просроченная запись удаляется и считается промахом.
func (c *ProductQueryCache) Get(_ context.Context, key string) ([]domain.Product, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(productCacheName, "miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*productEntry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues(productCacheName, "expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.WithLabelValues(productCacheName).Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues(productCacheName, "hit").Inc()
	return cloneProducts(ent.products), true
}

// Set — безусловная (пере)запись со свежей меткой истечения.
func (c *ProductQueryCache) Set(_ context.Context, key string, products []domain.Product) {
	if key == "" {
		return
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*productEntry)
		ent.products = cloneProducts(products)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&productEntry{
		key:       key,
		products:  cloneProducts(products),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.WithLabelValues(productCacheName).Set(float64(len(c.index)))
}

// InvalidateAll — сброс всех записей (после админ-мутации каталога).
func (c *ProductQueryCache) InvalidateAll(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.index = make(map[string]*list.Element)

	metrics.CacheOps.WithLabelValues(productCacheName, "invalidate").Inc()
	metrics.CacheSize.WithLabelValues(productCacheName).Set(0)
}

// ------вспомогательные функции------

// evictLRU — удаляет наименее используемый элемент.
func (c *ProductQueryCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(productCacheName, "evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *ProductQueryCache) removeElement(elem *list.Element) {
	ent := elem.Value.(*productEntry)
	delete(c.index, ent.key)
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL (ttl <= 0 — записи вечные).
func (c *ProductQueryCache) isExpired(ent *productEntry, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return !now.Before(ent.expiresAt)
}

// expiryFrom — момент истечения для текущего времени.
func (c *ProductQueryCache) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет просроченные элементы из хвоста до первого актуального.
func (c *ProductQueryCache) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent := back.Value.(*productEntry)
		if !c.isExpired(ent, now) {
			return
		}
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(productCacheName, "expired").Inc()
	}
}

// cloneProducts — копия списка, чтобы внешние изменения не задевали кэш.
func cloneProducts(products []domain.Product) []domain.Product {
	if products == nil {
		return nil
	}
	cloned := append([]domain.Product(nil), products...)
	for i := range cloned {
		if cloned[i].Sizes != nil {
			cloned[i].Sizes = append([]string(nil), cloned[i].Sizes...)
		}
	}
	return cloned
}
