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
)

func loggedInSession(ctx context.Context) *memory.SessionStore {
	session := memory.NewSessionStore(ctx, nil, nil)
	session.Login(ctx, domain.User{ID: "u1", Email: "u@x.io"}, "tok-1")
	return session
}

func guestSession(ctx context.Context) *memory.SessionStore {
	return memory.NewSessionStore(ctx, nil, nil)
}

func TestWishlistAdd_AttachesBackendID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl)
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := loggedInSession(ctx)

	gateway.EXPECT().AddToWishlist(gomock.Any(), "p1").Return("srv-1", nil)

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	if err := svc.Add(ctx, domain.WishlistItem{ProductID: "p1", Name: "Tee"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	items := store.Items(ctx)
	if len(items) != 1 || items[0].BackendID != "srv-1" {
		t.Fatalf("expected backend id attached, got %+v", items)
	}
}

func TestWishlistAdd_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl)
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := loggedInSession(ctx)

	// гейтвей вызывается ровно один раз: повторная вставка — локальный no-op
	gateway.EXPECT().AddToWishlist(gomock.Any(), "p1").Return("srv-1", nil).Times(1)

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	if err := svc.Add(ctx, domain.WishlistItem{ProductID: "p1"}); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := svc.Add(ctx, domain.WishlistItem{ProductID: "p1"}); err != nil {
		t.Fatalf("second Add: %v", err)
	}
	if got := len(store.Items(ctx)); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}
}

func TestWishlistAdd_BackendError_RollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl)
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := loggedInSession(ctx)

	gateway.EXPECT().AddToWishlist(gomock.Any(), "p1").Return("", errors.New("boom"))

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	if err := svc.Add(ctx, domain.WishlistItem{ProductID: "p1"}); err == nil {
		t.Fatal("expected error")
	}
	if store.Contains("p1") {
		t.Fatal("expected local insert rolled back")
	}
}

func TestWishlistAdd_Guest_LocalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl) // никаких вызовов не ожидается
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := memory.NewSessionStore(ctx, nil, nil)

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	if err := svc.Add(ctx, domain.WishlistItem{ProductID: "p1"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !store.Contains("p1") {
		t.Fatal("expected local insert for guest")
	}
}

func TestWishlistRemove_WithoutBackendID_SkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl) // RemoveFromWishlist не ожидается
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := loggedInSession(ctx)

	store.Add(ctx, domain.WishlistItem{ProductID: "p1"}) // вставка без подтверждения

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	if err := svc.Remove(ctx, "p1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if store.Contains("p1") {
		t.Fatal("expected local removal")
	}
}

func TestWishlistRemove_BackendError_RestoresItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl)
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := loggedInSession(ctx)

	store.Add(ctx, domain.WishlistItem{ProductID: "p1", BackendID: "srv-1"})
	gateway.EXPECT().RemoveFromWishlist(gomock.Any(), "srv-1").Return(errors.New("boom"))

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	if err := svc.Remove(ctx, "p1"); err == nil {
		t.Fatal("expected error")
	}
	if !store.Contains("p1") {
		t.Fatal("expected removal rolled back")
	}
}

func TestWishlistReconcile_ReplacesLocalMirror(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl)
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := loggedInSession(ctx)

	store.Add(ctx, domain.WishlistItem{ProductID: "stale"})

	authoritative := []domain.WishlistItem{
		{ProductID: "p1", BackendID: "srv-1"},
		{ProductID: "p2", BackendID: "srv-2"},
	}
	gateway.EXPECT().ListWishlist(gomock.Any()).Return(authoritative, nil)

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	if err := svc.Reconcile(ctx); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if store.Contains("stale") || !store.Contains("p1") || !store.Contains("p2") {
		t.Fatalf("expected authoritative list, got %+v", store.Items(ctx))
	}
}

func TestWishlistToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	gateway := mocks.NewMockWishlistGateway(ctrl)
	store := memory.NewWishlistStore(ctx, nil, nil)
	session := memory.NewSessionStore(ctx, nil, nil) // гость: без вызовов гейтвея

	svc := usecase.NewWishlistService(store, gateway, session, noopLogger{})

	added, err := svc.Toggle(ctx, domain.WishlistItem{ProductID: "p1"})
	if err != nil || !added {
		t.Fatalf("expected toggle-on, got added=%v err=%v", added, err)
	}
	added, err = svc.Toggle(ctx, domain.WishlistItem{ProductID: "p1"})
	if err != nil || added {
		t.Fatalf("expected toggle-off, got added=%v err=%v", added, err)
	}
}
