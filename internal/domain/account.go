package domain

// Address — адрес доставки пользователя.
type Address struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
	Line1  string `json:"line1"`
	Region string `json:"region"`
}

// ContactMessage — обращение через форму обратной связи.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// DashboardStats — сводка для админ-панели.
type DashboardStats struct {
	ProductsTotal  int   `json:"products_total"`
	OrdersTotal    int   `json:"orders_total"`
	CustomersTotal int   `json:"customers_total"`
	RevenueCents   int64 `json:"revenue_cents"`
}
