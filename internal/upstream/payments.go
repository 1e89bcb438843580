package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

var _ ports.PaymentGateway = (*Client)(nil)

type paymentIntentWire struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CreatePaymentIntent — POST /payments/intent. Провайдер возвращает только
// идентификатор и client secret; данных карты в процессе нет.
func (c *Client) CreatePaymentIntent(ctx context.Context, orderID string) (*domain.PaymentIntent, error) {
	body := struct {
		OrderID string `json:"order_id"`
	}{OrderID: orderID}

	var w paymentIntentWire
	if err := c.do(ctx, http.MethodPost, "/payments/intent", nil, body, &w); err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &domain.PaymentIntent{
		ID:           w.ID,
		ClientSecret: w.ClientSecret,
		AmountCents:  w.Amount,
		Currency:     w.Currency,
		Status:       w.Status,
	}, nil
}

// ProcessPayment — POST /payments/process; при успехе сервер возвращает
// заказ уже в статусе paid.
func (c *Client) ProcessPayment(ctx context.Context, orderID, intentID string) (*domain.Order, error) {
	body := struct {
		OrderID  string `json:"order_id"`
		IntentID string `json:"intent_id"`
	}{OrderID: orderID, IntentID: intentID}

	var w orderWire
	if err := c.do(ctx, http.MethodPost, "/payments/process", nil, body, &w); err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}
	order := w.toDomain()
	return &order, nil
}
