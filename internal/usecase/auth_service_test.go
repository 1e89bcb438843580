package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports/mocks"
	"github.com/mkarpushin/shopfront/internal/store/memory"
	"github.com/mkarpushin/shopfront/internal/usecase"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

func TestLogin_EstablishesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAuthGateway(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)
	session := memory.NewSessionStore(ctx, nil, nil)

	user := &domain.User{ID: "u1", Email: "u@x.io"}
	gateway.EXPECT().Login(gomock.Any(), "u@x.io", "secret123").Return(user, "tok-1", nil)

	svc := usecase.NewAuthService(gateway, session, cache, noopLogger{})

	got, err := svc.Login(ctx, "u@x.io", "secret123")
	if err != nil || got.ID != "u1" {
		t.Fatalf("Login: err=%v user=%+v", err, got)
	}

	sess := session.Current()
	if !sess.IsAuthenticated() || sess.Token != "tok-1" || !sess.ProfileLoaded {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestLogin_InvalidInput_SkipsGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAuthGateway(ctrl) // вызовов не ожидается
	cache := mocks.NewMockOrderCache(ctrl)
	session := memory.NewSessionStore(ctx, nil, nil)

	svc := usecase.NewAuthService(gateway, session, cache, noopLogger{})

	if _, err := svc.Login(ctx, "not-an-email", "x"); !errors.Is(err, validate.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if session.IsAuthenticated() {
		t.Fatal("session must stay empty")
	}
}

func TestLogout_ClearsSessionAndOrderCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAuthGateway(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)
	session := loggedInSession(ctx)

	cache.EXPECT().Invalidate(gomock.Any(), "u1")

	svc := usecase.NewAuthService(gateway, session, cache, noopLogger{})
	svc.Logout(ctx)

	if session.IsAuthenticated() {
		t.Fatal("expected session cleared")
	}
}

func TestProfile_LazyLoadOncePerSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAuthGateway(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)
	session := memory.NewSessionStore(ctx, nil, nil)

	// сессия восстановлена с токеном, но без профиля
	session.Login(ctx, domain.User{ID: "u1"}, "tok-1")
	session.InvalidateProfile(ctx)

	gateway.EXPECT().Me(gomock.Any()).Return(&domain.User{ID: "u1", Name: "Ivan"}, nil).Times(1)

	svc := usecase.NewAuthService(gateway, session, cache, noopLogger{})

	// первый вызов грузит профиль, второй отдаёт из сессии
	if _, err := svc.Profile(ctx); err != nil {
		t.Fatalf("first Profile: %v", err)
	}
	got, err := svc.Profile(ctx)
	if err != nil || got.Name != "Ivan" {
		t.Fatalf("second Profile: err=%v user=%+v", err, got)
	}
}

func TestProfile_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockAuthGateway(ctrl)
	cache := mocks.NewMockOrderCache(ctrl)
	session := memory.NewSessionStore(ctx, nil, nil)

	svc := usecase.NewAuthService(gateway, session, cache, noopLogger{})

	if _, err := svc.Profile(ctx); !errors.Is(err, usecase.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
