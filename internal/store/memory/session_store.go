package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

// Проверка, что SessionStore удовлетворяет интерфейсу SessionStore.
var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore — единственный источник правды о текущей сессии.
// Logout очищает пользователя, токен и флаги загрузки одним переходом:
// промежуточное состояние «токен снят, пользователь остался» невозможно.
type SessionStore struct {
	mu      sync.Mutex
	session domain.Session

	state ports.StateStore
	log   ports.Logger
}

// NewSessionStore — конструктор с восстановлением снапшота.
func NewSessionStore(ctx context.Context, state ports.StateStore, log ports.Logger) *SessionStore {
	s := &SessionStore{state: state, log: log}
	s.restore(ctx)
	return s
}

// Login — установить пользователя и токен; профиль считается загруженным.
func (s *SessionStore) Login(ctx context.Context, user domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.session = domain.Session{User: &u, Token: token, ProfileLoaded: true}
	s.persist(ctx)
}

// Logout — атомарная очистка сессии; снапшот удаляется целиком.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
	if s.state != nil {
		if err := s.state.Delete(ctx, ports.StateKeySession); err != nil {
			s.log.Warnf(ctx, "session snapshot delete failed: %v", err)
		}
	}
}

// IsAuthenticated — производный признак.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsAuthenticated()
}

// Token — токен для Authorization-заголовка исходящих запросов.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// Current — копия состояния сессии.
func (s *SessionStore) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.session
	if s.session.User != nil {
		u := *s.session.User
		out.User = &u
	}
	return out
}

// SetProfile — обновить профиль после ленивой загрузки (без смены токена).
func (s *SessionStore) SetProfile(ctx context.Context, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.session.User = &u
	s.session.ProfileLoaded = true
	s.persist(ctx)
}

// InvalidateProfile — пометить профиль на перезагрузку, не разрывая сессию.
func (s *SessionStore) InvalidateProfile(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.ProfileLoaded = false
	s.persist(ctx)
}

// SetAddressesLoaded — флаг загрузки адресов.
func (s *SessionStore) SetAddressesLoaded(ctx context.Context, loaded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.AddressesLoaded = loaded
	s.persist(ctx)
}

func (s *SessionStore) persist(ctx context.Context) {
	if s.state == nil {
		return
	}
	raw, err := json.Marshal(s.session)
	if err != nil {
		s.log.Warnf(ctx, "session snapshot marshal failed: %v", err)
		return
	}
	if err := s.state.Save(ctx, ports.StateKeySession, raw); err != nil {
		s.log.Warnf(ctx, "session snapshot save failed: %v", err)
	}
}

func (s *SessionStore) restore(ctx context.Context) {
	if s.state == nil {
		return
	}
	raw, err := s.state.Load(ctx, ports.StateKeySession)
	if err != nil {
		s.log.Warnf(ctx, "session snapshot load failed: %v", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warnf(ctx, "session snapshot corrupted, starting empty: %v", err)
		return
	}
	s.session = sess
}
