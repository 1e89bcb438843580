package usecase

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

// CacheInvalidator — применяет события изменения данных из топика к кэшам.
// Любое изменение каталога (товар, категория, бренд) сбрасывает кэш каталога
// целиком; событие по заказу сбрасывает кэш затронутого пользователя,
// а без пользователя — весь кэш заказов.
type CacheInvalidator struct {
	products ports.ProductCache
	orders   ports.OrderCache
	log      ports.Logger
}

// NewCacheInvalidator — DI-конструктор.
func NewCacheInvalidator(
	products ports.ProductCache,
	orders ports.OrderCache,
	log ports.Logger,
) *CacheInvalidator {
	return &CacheInvalidator{
		products: products,
		orders:   orders,
		log:      log,
	}
}

// ApplyFromMessage — обработка сырого сообщения из топика.
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) и валидация словаря
//     сущностей/действий —> validate.ErrInvalidInput для битых сообщений;
//  2. сброс соответствующего кэша.
func (s *CacheInvalidator) ApplyFromMessage(ctx context.Context, raw []byte) error {
	event, err := validate.EventFromJSON(raw)
	if err != nil {
		return err
	}

	switch event.Entity {
	case domain.EventEntityProduct, domain.EventEntityCategory, domain.EventEntityBrand:
		s.products.InvalidateAll(ctx)
		s.log.Infof(ctx, "catalog cache invalidated by event entity=%s action=%s id=%s",
			event.Entity, event.Action, event.ID)
	case domain.EventEntityOrder:
		if event.UserID != "" {
			s.orders.Invalidate(ctx, event.UserID)
		} else {
			s.orders.InvalidateAll(ctx)
		}
		s.log.Infof(ctx, "order cache invalidated by event id=%s user=%s", event.ID, event.UserID)
	}
	return nil
}
