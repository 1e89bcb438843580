package validate

import (
	"errors"
	"testing"

	"github.com/mkarpushin/shopfront/internal/domain"
)

func TestCartItem(t *testing.T) {
	t.Parallel()

	valid := domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1, PriceCents: 2599}

	tests := []struct {
		name    string
		mutate  func(*domain.CartItem)
		wantErr bool
	}{
		{name: "валидная позиция", mutate: func(*domain.CartItem) {}, wantErr: false},
		{name: "без product_id", mutate: func(i *domain.CartItem) { i.ProductID = "" }, wantErr: true},
		{name: "без размера", mutate: func(i *domain.CartItem) { i.Size = "" }, wantErr: true},
		{name: "нулевое количество", mutate: func(i *domain.CartItem) { i.Quantity = 0 }, wantErr: true},
		{name: "отрицательная цена", mutate: func(i *domain.CartItem) { i.PriceCents = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			item := valid
			tt.mutate(&item)

			err := CartItem(&item)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCartItem_Nil(t *testing.T) {
	t.Parallel()
	if !errors.Is(CartItem(nil), ErrInvalidInput) {
		t.Fatal("expected ErrInvalidInput for nil item")
	}
}

func TestCheckout(t *testing.T) {
	t.Parallel()

	item := domain.OrderItem{ProductID: "p1", Size: "M", PriceCents: 2599, Quantity: 1}

	tests := []struct {
		name    string
		draft   *domain.OrderDraft
		wantErr bool
	}{
		{name: "валидный черновик", draft: &domain.OrderDraft{AddressID: "a1", Items: []domain.OrderItem{item}}},
		{name: "пустая корзина", draft: &domain.OrderDraft{AddressID: "a1"}, wantErr: true},
		{name: "без адреса", draft: &domain.OrderDraft{Items: []domain.OrderItem{item}}, wantErr: true},
		{name: "nil черновик", draft: nil, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Checkout(tt.draft)
			if tt.wantErr != errors.Is(err, ErrInvalidInput) {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegistration(t *testing.T) {
	t.Parallel()

	if err := Registration("Ivan", "ivan@example.com", "longenough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(Registration("", "ivan@example.com", "longenough"), ErrInvalidInput) {
		t.Fatal("expected error for empty name")
	}
	if !errors.Is(Registration("Ivan", "not-an-email", "longenough"), ErrInvalidInput) {
		t.Fatal("expected error for bad email")
	}
	if !errors.Is(Registration("Ivan", "ivan@example.com", "short"), ErrInvalidInput) {
		t.Fatal("expected error for short password")
	}
}

func TestEvent(t *testing.T) {
	t.Parallel()

	ok := domain.ChangeEvent{Entity: domain.EventEntityProduct, Action: domain.EventActionUpdated, ID: "p1"}
	if err := Event(&ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []domain.ChangeEvent{
		{Entity: "cart", Action: domain.EventActionUpdated, ID: "p1"},
		{Entity: domain.EventEntityProduct, Action: "exploded", ID: "p1"},
		{Entity: domain.EventEntityProduct, Action: domain.EventActionUpdated},
	}
	for i := range bad {
		if !errors.Is(Event(&bad[i]), ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput", i)
		}
	}
}
