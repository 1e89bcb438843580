package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mkarpushin/shopfront/internal/cache/querykey"
	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports/mocks"
	"github.com/mkarpushin/shopfront/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestCatalogProducts_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)

	gateway := mocks.NewMockCatalogGateway(ctrl)
	cache := mocks.NewMockProductCache(ctrl)

	filter := &domain.ProductFilter{Search: "tee"}
	cached := []domain.Product{{ID: "p1"}}

	cache.EXPECT().Get(gomock.Any(), querykey.Key(filter)).Return(cached, true)

	svc := usecase.NewCatalogService(gateway, cache, noopLogger{})

	got, err := svc.Products(context.Background(), filter)
	if err != nil || len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("expected hit, got err=%v products=%+v", err, got)
	}
}

func TestCatalogProducts_CacheMiss_FetchAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	gateway := mocks.NewMockCatalogGateway(ctrl)
	cache := mocks.NewMockProductCache(ctrl)

	filter := &domain.ProductFilter{Search: "tee"}
	key := querykey.Key(filter)
	fetched := []domain.Product{{ID: "p1"}, {ID: "p2"}}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, false),
		gateway.EXPECT().ListProducts(gomock.Any(), filter).Return(fetched, nil),
		cache.EXPECT().Set(gomock.Any(), key, fetched),
	)

	svc := usecase.NewCatalogService(gateway, cache, noopLogger{})

	got, err := svc.Products(context.Background(), filter)
	if err != nil || len(got) != 2 {
		t.Fatalf("expected fetch, got err=%v products=%+v", err, got)
	}
}

func TestCatalogProducts_GatewayError_NotCached(t *testing.T) {
	ctrl := gomock.NewController(t)

	gateway := mocks.NewMockCatalogGateway(ctrl)
	cache := mocks.NewMockProductCache(ctrl)

	wantErr := errors.New("boom")

	// Set не ожидается: ошибка API не должна попадать в кэш.
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	gateway.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return(nil, wantErr)

	svc := usecase.NewCatalogService(gateway, cache, noopLogger{})

	if _, err := svc.Products(context.Background(), nil); !errors.Is(err, wantErr) {
		t.Fatalf("expected gateway error, got %v", err)
	}
}

func TestCatalogAdminMutations_InvalidateCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	gateway := mocks.NewMockCatalogGateway(ctrl)
	cache := mocks.NewMockProductCache(ctrl)

	p := &domain.Product{ID: "p1", Name: "Tee"}

	gomock.InOrder(
		gateway.EXPECT().CreateProduct(gomock.Any(), p).Return(p, nil),
		cache.EXPECT().InvalidateAll(gomock.Any()),
		gateway.EXPECT().UpdateProduct(gomock.Any(), p).Return(p, nil),
		cache.EXPECT().InvalidateAll(gomock.Any()),
		gateway.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(nil),
		cache.EXPECT().InvalidateAll(gomock.Any()),
	)

	svc := usecase.NewCatalogService(gateway, cache, noopLogger{})
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, p); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if _, err := svc.UpdateProduct(ctx, p); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if err := svc.DeleteProduct(ctx, "p1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
}

func TestCatalogAdminMutation_ErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)

	gateway := mocks.NewMockCatalogGateway(ctrl)
	cache := mocks.NewMockProductCache(ctrl)

	// InvalidateAll не ожидается: мутация не прошла.
	gateway.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(errors.New("forbidden"))

	svc := usecase.NewCatalogService(gateway, cache, noopLogger{})

	if err := svc.DeleteProduct(context.Background(), "p1"); err == nil {
		t.Fatal("expected error")
	}
}
