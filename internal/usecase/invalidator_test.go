package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mkarpushin/shopfront/internal/ports/mocks"
	"github.com/mkarpushin/shopfront/internal/usecase"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

func TestApplyFromMessage_ProductEvent_InvalidatesCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)

	products := mocks.NewMockProductCache(ctrl)
	orders := mocks.NewMockOrderCache(ctrl)

	products.EXPECT().InvalidateAll(gomock.Any())

	inv := usecase.NewCacheInvalidator(products, orders, noopLogger{})

	raw := []byte(`{"entity":"product","action":"updated","id":"p1"}`)
	if err := inv.ApplyFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("ApplyFromMessage: %v", err)
	}
}

func TestApplyFromMessage_OrderEvent_PerUser(t *testing.T) {
	ctrl := gomock.NewController(t)

	products := mocks.NewMockProductCache(ctrl)
	orders := mocks.NewMockOrderCache(ctrl)

	orders.EXPECT().Invalidate(gomock.Any(), "u1")

	inv := usecase.NewCacheInvalidator(products, orders, noopLogger{})

	raw := []byte(`{"entity":"order","action":"updated","id":"o1","user_id":"u1"}`)
	if err := inv.ApplyFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("ApplyFromMessage: %v", err)
	}
}

func TestApplyFromMessage_OrderEvent_WithoutUser_InvalidatesAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	products := mocks.NewMockProductCache(ctrl)
	orders := mocks.NewMockOrderCache(ctrl)

	orders.EXPECT().InvalidateAll(gomock.Any())

	inv := usecase.NewCacheInvalidator(products, orders, noopLogger{})

	raw := []byte(`{"entity":"order","action":"deleted","id":"o1"}`)
	if err := inv.ApplyFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("ApplyFromMessage: %v", err)
	}
}

func TestApplyFromMessage_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)

	products := mocks.NewMockProductCache(ctrl) // кэши не трогаются
	orders := mocks.NewMockOrderCache(ctrl)

	inv := usecase.NewCacheInvalidator(products, orders, noopLogger{})

	for _, raw := range []string{
		`{"entity":"product"`,
		`{"entity":"product","action":"updated","id":"p1","extra":true}`,
		`{"entity":"cart","action":"updated","id":"x"}`,
	} {
		if err := inv.ApplyFromMessage(context.Background(), []byte(raw)); !errors.Is(err, validate.ErrInvalidInput) {
			t.Fatalf("raw=%s: expected ErrInvalidInput, got %v", raw, err)
		}
	}
}
