package usecase

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

// CheckoutService — оформление заказа из корзины.
// Шаги:
//  1. черновик заказа из содержимого корзины + выбранный адрес;
//  2. доменная валидация (вернёт validate.ErrInvalidInput при проблемах);
//  3. создание заказа на бэкенде;
//  4. намерение платежа и его обработка через провайдера;
//  5. только после успешной оплаты — очистка корзины и сброс кэша заказов.
//
// При ошибке оплаты корзина не трогается: пользователь может повторить
// попытку, а созданный заказ остаётся на сервере в статусе created.
type CheckoutService struct {
	orders     ports.OrderGateway
	payments   ports.PaymentGateway
	cart       ports.CartStore
	orderCache ports.OrderCache
	session    ports.SessionStore
	log        ports.Logger
}

// NewCheckoutService — DI-конструктор.
func NewCheckoutService(
	orders ports.OrderGateway,
	payments ports.PaymentGateway,
	cart ports.CartStore,
	orderCache ports.OrderCache,
	session ports.SessionStore,
	log ports.Logger,
) *CheckoutService {
	return &CheckoutService{
		orders:     orders,
		payments:   payments,
		cart:       cart,
		orderCache: orderCache,
		session:    session,
		log:        log,
	}
}

// draftFromCart — черновик заказа из текущих строк корзины.
func (s *CheckoutService) draftFromCart(ctx context.Context, addressID string) *domain.OrderDraft {
	items := s.cart.Items(ctx)
	draft := &domain.OrderDraft{AddressID: addressID, Items: make([]domain.OrderItem, 0, len(items))}
	for _, it := range items {
		draft.Items = append(draft.Items, domain.OrderItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Size:       it.Size,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}
	return draft
}

// Checkout — полный цикл оформления; возвращает оплаченный заказ.
func (s *CheckoutService) Checkout(ctx context.Context, addressID string) (*domain.Order, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	draft := s.draftFromCart(ctx, addressID)
	if err := validate.Checkout(draft); err != nil {
		return nil, err
	}

	order, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		s.log.Errorf(ctx, "checkout: create order failed err=%v", err)
		return nil, err
	}
	s.log.Infof(ctx, "checkout: order created id=%s total=%d", order.ID, order.TotalCents)

	intent, err := s.payments.CreatePaymentIntent(ctx, order.ID)
	if err != nil {
		s.log.Errorf(ctx, "checkout: payment intent failed order=%s err=%v", order.ID, err)
		return nil, err
	}

	paid, err := s.payments.ProcessPayment(ctx, order.ID, intent.ID)
	if err != nil {
		s.log.Errorf(ctx, "checkout: payment failed order=%s intent=%s err=%v", order.ID, intent.ID, err)
		return nil, err
	}

	s.cart.Clear(ctx)
	s.cart.Close()
	key := sess.Token
	if sess.User != nil {
		key = sess.User.ID
	}
	s.orderCache.Invalidate(ctx, key)

	s.log.Infof(ctx, "checkout: order paid id=%s status=%s", paid.ID, paid.Status)
	return paid, nil
}
