package ports

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// Шлюзы к удалённому commerce API. Сервер — непрозрачный внешний участник:
// локально его логика не воспроизводится, кэши лишь временно зеркалируют ответы.

// CatalogGateway — каталог: чтение витрины и админ-мутации товаров.
type CatalogGateway interface {
	ListProducts(ctx context.Context, f *domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	FilterMeta(ctx context.Context) (*domain.FilterMeta, error)

	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OrderGateway — заказы текущего пользователя и админ-операции над статусами.
type OrderGateway interface {
	CreateOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)

	UpdateOrderStatus(ctx context.Context, id, status string) error
	CancelOrder(ctx context.Context, id string) error
	RefundOrder(ctx context.Context, id string) error
}

// AuthGateway — аутентификация; login/register возвращают пользователя и bearer-токен.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Me(ctx context.Context) (*domain.User, error)
}

// WishlistGateway — серверная сторона отложенных товаров.
type WishlistGateway interface {
	// AddToWishlist — возвращает серверный идентификатор записи.
	AddToWishlist(ctx context.Context, productID string) (string, error)
	ListWishlist(ctx context.Context) ([]domain.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, backendID string) error
}

// PaymentGateway — намерение платежа и его обработка. Сырые данные карты
// в приложение не попадают — только идентификаторы от провайдера.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, orderID string) (*domain.PaymentIntent, error)
	ProcessPayment(ctx context.Context, orderID, intentID string) (*domain.Order, error)
}

// AccountGateway — адреса, обратная связь и админ-статистика.
type AccountGateway interface {
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	CreateAddress(ctx context.Context, a *domain.Address) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id string) error

	SendContactMessage(ctx context.Context, m *domain.ContactMessage) error
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
