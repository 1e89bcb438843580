package domain

import "time"

// Статусы заказа на стороне бэкенда.
const (
	OrderStatusCreated   = "created"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// OrderItem — позиция заказа.
type OrderItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Size       string `json:"size"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Order — заказ пользователя; зеркало серверной записи, локально не мутируется.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"total_cents"`
	Status     string      `json:"status"`
	AddressID  string      `json:"address_id"`
	PaymentID  string      `json:"payment_id,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrderDraft — заявка на создание заказа из содержимого корзины.
type OrderDraft struct {
	AddressID string      `json:"address_id"`
	Items     []OrderItem `json:"items"`
}

// PaymentIntent — намерение платежа от провайдера.
// Чувствительные данные карты в процесс не попадают: провайдер отдаёт
// только идентификатор и client secret для hosted-формы.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	AmountCents  int64  `json:"amount_cents"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
