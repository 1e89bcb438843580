package usecase

import (
	"context"
	"time"

	"github.com/mkarpushin/shopfront/internal/cache/querykey"
	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

// CatalogService — прикладная логика каталога: чтение витрины через кэш
// по каноническому ключу фильтра и админ-мутации со сбросом кэша.
type CatalogService struct {
	gateway ports.CatalogGateway // прямой доступ к commerce API
	cache   ports.ProductCache   // кэш результатов запросов
	log     ports.Logger
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	gateway ports.CatalogGateway,
	cache ports.ProductCache,
	log ports.Logger,
) *CatalogService {
	return &CatalogService{
		gateway: gateway,
		cache:   cache,
		log:     log,
	}
}

// Products — список товаров по фильтру: сначала из кэша, при промахе —
// запрос к API с записью в кэш. Ключ кэша детерминирован содержимым фильтра,
// поэтому перестановка значений и пустой/nil фильтр дают один ключ.
// При ошибке API кэш не трогается и ошибка отдаётся наверх как есть.
func (s *CatalogService) Products(ctx context.Context, f *domain.ProductFilter) ([]domain.Product, error) {
	key := querykey.Key(f)

	if products, found := s.cache.Get(ctx, key); found {
		s.log.Infof(ctx, "cache hit for products key=%s", key)
		return products, nil
	}
	s.log.Infof(ctx, "cache miss for products key=%s", key)

	start := time.Now()
	products, err := s.gateway.ListProducts(ctx, f)
	if err != nil {
		s.log.Errorf(ctx, "gateway.ListProducts failed key=%s err=%v", key, err)
		return nil, err
	}

	s.cache.Set(ctx, key, products)
	s.log.Infof(ctx, "products fetch key=%s count=%d took=%s", key, len(products), time.Since(start))
	return products, nil
}

// Product — карточка товара; всегда напрямую из API.
// Кэшируются только списочные запросы: карточка открывается редко,
// а устаревшая цена на ней дороже лишнего запроса.
func (s *CatalogService) Product(ctx context.Context, id string) (*domain.Product, error) {
	return s.gateway.GetProduct(ctx, id)
}

// FilterMeta — справочники фильтров витрины; напрямую из API.
func (s *CatalogService) FilterMeta(ctx context.Context) (*domain.FilterMeta, error) {
	return s.gateway.FilterMeta(ctx)
}

// CreateProduct — админ-создание товара. Успешная мутация сбрасывает
// весь кэш каталога: грубая, но корректная инвалидация.
func (s *CatalogService) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created, err := s.gateway.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	s.log.Infof(ctx, "product created id=%s, catalog cache invalidated", created.ID)
	return created, nil
}

// UpdateProduct — админ-обновление товара со сбросом кэша.
func (s *CatalogService) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	updated, err := s.gateway.UpdateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateAll(ctx)
	s.log.Infof(ctx, "product updated id=%s, catalog cache invalidated", updated.ID)
	return updated, nil
}

// DeleteProduct — админ-удаление товара со сбросом кэша.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.gateway.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	s.log.Infof(ctx, "product deleted id=%s, catalog cache invalidated", id)
	return nil
}
