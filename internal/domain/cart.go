package domain

// CartLineID — идентификатор строки корзины.
// Вариант товара определяется парой (товар, размер), а не только товаром.
func CartLineID(productID, size string) string {
	return productID + "-" + size
}

// CartItem — строка корзины. ID выводится из ProductID и Size.
type CartItem struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
	Size       string `json:"size"`
	ImageURL   string `json:"image_url,omitempty"`
}
