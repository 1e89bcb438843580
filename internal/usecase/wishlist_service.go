package usecase

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

// WishlistService — отложенные товары с оптимистичной синхронизацией:
// локальное зеркало обновляется сразу, подтверждение бэкенда приходит следом.
// При ошибке бэкенда локальная операция откатывается.
type WishlistService struct {
	store   ports.WishlistStore
	gateway ports.WishlistGateway
	session ports.SessionStore
	log     ports.Logger
}

// NewWishlistService — DI-конструктор.
func NewWishlistService(
	store ports.WishlistStore,
	gateway ports.WishlistGateway,
	session ports.SessionStore,
	log ports.Logger,
) *WishlistService {
	return &WishlistService{
		store:   store,
		gateway: gateway,
		session: session,
		log:     log,
	}
}

// Add — добавить товар. Локально — сразу (идемпотентно); затем подтверждение
// бэкендом с привязкой серверного идентификатора. Без сессии список живёт
// только локально. Ошибка бэкенда откатывает локальную вставку.
func (s *WishlistService) Add(ctx context.Context, item domain.WishlistItem) error {
	if !s.store.Add(ctx, item) {
		return nil // уже в списке
	}
	if !s.session.IsAuthenticated() {
		return nil
	}

	backendID, err := s.gateway.AddToWishlist(ctx, item.ProductID)
	if err != nil {
		s.store.Remove(ctx, item.ProductID)
		s.log.Warnf(ctx, "wishlist add rolled back product=%s err=%v", item.ProductID, err)
		return err
	}

	s.store.Update(ctx, item.ProductID, domain.WishlistUpdate{BackendID: &backendID})
	return nil
}

// Remove — убрать товар. Запись без BackendID (бэкенд ещё не подтвердил
// вставку) удаляется только локально: серверную сторону выровняет Reconcile.
// Ошибка бэкенда возвращает запись на место.
func (s *WishlistService) Remove(ctx context.Context, productID string) error {
	removed, ok := s.store.Remove(ctx, productID)
	if !ok {
		return nil
	}
	if !s.session.IsAuthenticated() {
		return nil
	}
	if removed.BackendID == "" {
		s.log.Warnf(ctx, "wishlist remove without backend id product=%s, deferring to reconcile", productID)
		return nil
	}

	if err := s.gateway.RemoveFromWishlist(ctx, removed.BackendID); err != nil {
		s.store.Add(ctx, removed)
		s.log.Warnf(ctx, "wishlist remove rolled back product=%s err=%v", productID, err)
		return err
	}
	return nil
}

// Toggle — добавить или убрать в зависимости от текущего состояния.
// Возвращает true, если товар оказался в списке.
func (s *WishlistService) Toggle(ctx context.Context, item domain.WishlistItem) (bool, error) {
	if s.store.Contains(item.ProductID) {
		return false, s.Remove(ctx, item.ProductID)
	}
	return true, s.Add(ctx, item)
}

// Reconcile — заменить локальное зеркало авторитетным списком с бэкенда.
// Вызывается после входа и при подозрении на рассинхронизацию.
func (s *WishlistService) Reconcile(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return nil
	}

	items, err := s.gateway.ListWishlist(ctx)
	if err != nil {
		s.log.Errorf(ctx, "wishlist reconcile failed err=%v", err)
		return err
	}
	s.store.SetAll(ctx, items)
	s.log.Infof(ctx, "wishlist reconciled count=%d", len(items))
	return nil
}

// Items — текущее содержимое списка.
func (s *WishlistService) Items(ctx context.Context) []domain.WishlistItem {
	return s.store.Items(ctx)
}

// Contains — предикат для витрины.
func (s *WishlistService) Contains(productID string) bool {
	return s.store.Contains(productID)
}
