package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports/mocks"
	"github.com/mkarpushin/shopfront/internal/usecase"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

func TestAddresses_LoadedOncePerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAccountGateway(ctrl)
	session := loggedInSession(ctx)

	gateway.EXPECT().ListAddresses(gomock.Any()).
		Return([]domain.Address{{ID: "a1", City: "Moscow"}}, nil).Times(1)

	svc := usecase.NewAccountService(gateway, session, noopLogger{})

	// первый вызов грузит с бэкенда, второй — из локального зеркала
	first, err := svc.Addresses(ctx)
	if err != nil || len(first) != 1 {
		t.Fatalf("first Addresses: err=%v got=%+v", err, first)
	}
	second, err := svc.Addresses(ctx)
	if err != nil || len(second) != 1 || second[0].ID != "a1" {
		t.Fatalf("second Addresses: err=%v got=%+v", err, second)
	}
}

func TestCreateAddress_AppendsToMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAccountGateway(ctrl)
	session := loggedInSession(ctx)

	gateway.EXPECT().ListAddresses(gomock.Any()).Return(nil, nil)
	gateway.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
		Return(&domain.Address{ID: "a2", City: "Kazan"}, nil)

	svc := usecase.NewAccountService(gateway, session, noopLogger{})

	if _, err := svc.Addresses(ctx); err != nil {
		t.Fatalf("Addresses: %v", err)
	}
	if _, err := svc.CreateAddress(ctx, &domain.Address{City: "Kazan"}); err != nil {
		t.Fatalf("CreateAddress: %v", err)
	}

	got, err := svc.Addresses(ctx)
	if err != nil || len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("expected mirror updated, got err=%v addresses=%+v", err, got)
	}
}

func TestAddresses_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAccountGateway(ctrl)
	session := guestSession(ctx)

	svc := usecase.NewAccountService(gateway, session, noopLogger{})

	if _, err := svc.Addresses(ctx); !errors.Is(err, usecase.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSendContactMessage_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAccountGateway(ctrl)
	session := guestSession(ctx)

	svc := usecase.NewAccountService(gateway, session, noopLogger{})

	bad := &domain.ContactMessage{Name: "Ivan", Email: "nope", Body: "hi"}
	if err := svc.SendContactMessage(ctx, bad); !errors.Is(err, validate.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	ok := &domain.ContactMessage{Name: "Ivan", Email: "ivan@example.com", Body: "hi"}
	gateway.EXPECT().SendContactMessage(gomock.Any(), ok).Return(nil)
	if err := svc.SendContactMessage(ctx, ok); err != nil {
		t.Fatalf("SendContactMessage: %v", err)
	}
}
