package memory

import (
	"context"
	"testing"

	"github.com/mkarpushin/shopfront/internal/domain"
)

func TestSession_LoginSetsEverything(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, nil, nil)

	if s.IsAuthenticated() {
		t.Fatalf("fresh session must be anonymous")
	}

	s.Login(ctx, domain.User{ID: "u1", Name: "Ivan", Email: "ivan@example.com"}, "tok-1")

	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated after login")
	}
	if s.Token() != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", s.Token())
	}
	cur := s.Current()
	if cur.User == nil || cur.User.ID != "u1" || !cur.ProfileLoaded {
		t.Fatalf("unexpected session state: %+v", cur)
	}
}

// Атомарность logout: ни одного наблюдаемого состояния, где токен снят,
// а пользователь или флаги остались.
func TestSession_LogoutAtomicClear(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, nil, nil)

	s.Login(ctx, domain.User{ID: "u1"}, "tok-1")
	s.SetAddressesLoaded(ctx, true)

	s.Logout(ctx)

	cur := s.Current()
	if cur.Token != "" || cur.User != nil || cur.ProfileLoaded || cur.AddressesLoaded {
		t.Fatalf("logout must clear everything at once: %+v", cur)
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected anonymous after logout")
	}
}

func TestSession_InvalidateProfileKeepsToken(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, nil, nil)

	s.Login(ctx, domain.User{ID: "u1"}, "tok-1")
	s.InvalidateProfile(ctx)

	cur := s.Current()
	if cur.ProfileLoaded {
		t.Fatalf("profile must be marked for reload")
	}
	if cur.Token != "tok-1" || cur.User == nil {
		t.Fatalf("invalidate must not log the user out: %+v", cur)
	}
}

// Current отдаёт копию: мутация результата не задевает стор.
func TestSession_CurrentReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(ctx, nil, nil)

	s.Login(ctx, domain.User{ID: "u1", Name: "Ivan"}, "tok-1")

	cur := s.Current()
	cur.User.Name = "Mallory"

	if s.Current().User.Name != "Ivan" {
		t.Fatalf("Current must return a copy of the user")
	}
}
