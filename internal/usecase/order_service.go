package usecase

import (
	"context"
	"time"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

// OrderService — заказы текущего пользователя и админ-операции над статусами.
// Список заказов кэшируется коротко, по ключу пользователя.
type OrderService struct {
	gateway ports.OrderGateway
	cache   ports.OrderCache
	session ports.SessionStore
	log     ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	gateway ports.OrderGateway,
	cache ports.OrderCache,
	session ports.SessionStore,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		gateway: gateway,
		cache:   cache,
		session: session,
		log:     log,
	}
}

// cacheKey — ключ кэша заказов текущей сессии. Пока профиль не загружен,
// пользователь неизвестен — ключом служит токен (он так же уникален для сессии).
func (s *OrderService) cacheKey(sess *domain.Session) string {
	if sess.User != nil {
		return sess.User.ID
	}
	return sess.Token
}

// Orders — список заказов: сначала из кэша, при промахе — из API с записью в кэш.
func (s *OrderService) Orders(ctx context.Context) ([]domain.Order, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	key := s.cacheKey(&sess)

	if orders, found := s.cache.Get(ctx, key); found {
		s.log.Infof(ctx, "cache hit for orders user=%s", key)
		return orders, nil
	}
	s.log.Infof(ctx, "cache miss for orders user=%s", key)

	start := time.Now()
	orders, err := s.gateway.ListOrders(ctx)
	if err != nil {
		s.log.Errorf(ctx, "gateway.ListOrders failed err=%v", err)
		return nil, err
	}

	s.cache.Set(ctx, key, orders)
	s.log.Infof(ctx, "orders fetch user=%s count=%d took=%s", key, len(orders), time.Since(start))
	return orders, nil
}

// Order — один заказ; всегда напрямую из API (статус меняется на сервере).
func (s *OrderService) Order(ctx context.Context, id string) (*domain.Order, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.gateway.GetOrder(ctx, id)
}

// Cancel — отмена своего заказа; кэш списка текущего пользователя сбрасывается.
func (s *OrderService) Cancel(ctx context.Context, id string) error {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := s.gateway.CancelOrder(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, s.cacheKey(&sess))
	s.log.Infof(ctx, "order cancelled id=%s", id)
	return nil
}

// SetStatus — админ-смена статуса. Затронут чужой пользователь,
// чей ключ нам неизвестен, поэтому сбрасывается весь кэш заказов.
func (s *OrderService) SetStatus(ctx context.Context, id, status string) error {
	if err := s.gateway.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	s.log.Infof(ctx, "order status updated id=%s status=%s", id, status)
	return nil
}

// Refund — админ-возврат средств со сбросом всего кэша заказов.
func (s *OrderService) Refund(ctx context.Context, id string) error {
	if err := s.gateway.RefundOrder(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateAll(ctx)
	s.log.Infof(ctx, "order refunded id=%s", id)
	return nil
}
