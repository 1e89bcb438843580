package validate

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// ErrInvalidInput — базовая (sentinel error) ошибка валидации.
// Все проверки пакета оборачивают причину вокруг неё.
var ErrInvalidInput = errors.New("input validation failed")

// CartItem — проверяет строку перед добавлением в корзину.
// Размер обязателен: вариант товара определяется парой (товар, размер).
func CartItem(item *domain.CartItem) error {
	if item == nil {
		return fmt.Errorf("%w: позиция корзины не может быть nil", ErrInvalidInput)
	}
	if item.ProductID == "" {
		return fmt.Errorf("%w: product_id обязателен", ErrInvalidInput)
	}
	if item.Size == "" {
		return fmt.Errorf("%w: размер не выбран", ErrInvalidInput)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("%w: quantity должен быть не меньше 1", ErrInvalidInput)
	}
	if item.PriceCents < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidInput)
	}
	return nil
}

// Checkout — проверяет черновик заказа перед отправкой на бэкенд.
func Checkout(draft *domain.OrderDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: черновик заказа не может быть nil", ErrInvalidInput)
	}
	if len(draft.Items) == 0 {
		return fmt.Errorf("%w: корзина пуста", ErrInvalidInput)
	}
	if draft.AddressID == "" {
		return fmt.Errorf("%w: address_id обязателен", ErrInvalidInput)
	}
	for i := range draft.Items {
		it := &draft.Items[i]
		if it.ProductID == "" {
			return fmt.Errorf("%w: items[%d].product_id обязателен", ErrInvalidInput, i)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: items[%d].quantity должен быть не меньше 1", ErrInvalidInput, i)
		}
	}
	return nil
}

// Credentials — проверяет данные входа.
func Credentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidInput)
	}
	if password == "" {
		return fmt.Errorf("%w: пароль обязателен", ErrInvalidInput)
	}
	return nil
}

// Registration — проверяет данные регистрации.
func Registration(name, email, password string) error {
	if name == "" {
		return fmt.Errorf("%w: имя обязательно", ErrInvalidInput)
	}
	if err := Credentials(email, password); err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: пароль короче 8 символов", ErrInvalidInput)
	}
	return nil
}

// ContactMessage — проверяет обращение через форму обратной связи.
func ContactMessage(m *domain.ContactMessage) error {
	if m == nil {
		return fmt.Errorf("%w: обращение не может быть nil", ErrInvalidInput)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: имя обязательно", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidInput)
	}
	if m.Body == "" {
		return fmt.Errorf("%w: текст обращения обязателен", ErrInvalidInput)
	}
	return nil
}

// Event — проверяет событие изменения данных: сущность и действие
// должны быть из известного словаря.
func Event(e *domain.ChangeEvent) error {
	if e == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidInput)
	}
	switch e.Entity {
	case domain.EventEntityProduct, domain.EventEntityCategory, domain.EventEntityBrand, domain.EventEntityOrder:
	default:
		return fmt.Errorf("%w: неизвестная сущность %q", ErrInvalidInput, e.Entity)
	}
	switch e.Action {
	case domain.EventActionCreated, domain.EventActionUpdated, domain.EventActionDeleted:
	default:
		return fmt.Errorf("%w: неизвестное действие %q", ErrInvalidInput, e.Action)
	}
	if e.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidInput)
	}
	return nil
}
