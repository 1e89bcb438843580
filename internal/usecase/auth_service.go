package usecase

import (
	"context"
	"errors"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

// ErrNotAuthenticated — операция требует активной сессии.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthService — вход, регистрация, выход и ленивая загрузка профиля.
type AuthService struct {
	gateway ports.AuthGateway
	session ports.SessionStore
	orders  ports.OrderCache // сбрасывается при выходе: кэш чужой сессии бесполезен
	log     ports.Logger
}

// NewAuthService — DI-конструктор.
func NewAuthService(
	gateway ports.AuthGateway,
	session ports.SessionStore,
	orders ports.OrderCache,
	log ports.Logger,
) *AuthService {
	return &AuthService{
		gateway: gateway,
		session: session,
		orders:  orders,
		log:     log,
	}
}

// Login — аутентификация: проверка входа, запрос к API, установка сессии.
// Профиль приходит вместе с токеном, поэтому сразу помечается загруженным.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := validate.Credentials(email, password); err != nil {
		return nil, err
	}

	user, token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.log.Warnf(ctx, "login failed email=%s err=%v", email, err)
		return nil, err
	}

	s.session.Login(ctx, *user, token)
	s.log.Infof(ctx, "logged in user=%s", user.ID)
	return user, nil
}

// Register — регистрация; сервер сразу выдаёт токен, сессия устанавливается как при входе.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if err := validate.Registration(name, email, password); err != nil {
		return nil, err
	}

	user, token, err := s.gateway.Register(ctx, name, email, password)
	if err != nil {
		s.log.Warnf(ctx, "register failed email=%s err=%v", email, err)
		return nil, err
	}

	s.session.Login(ctx, *user, token)
	s.log.Infof(ctx, "registered user=%s", user.ID)
	return user, nil
}

// Logout — атомарная очистка сессии и сброс кэша заказов бывшего пользователя.
// Выход всегда локальный: серверная инвалидация токена — не наша забота.
func (s *AuthService) Logout(ctx context.Context) {
	sess := s.session.Current()
	if sess.User != nil {
		s.orders.Invalidate(ctx, sess.User.ID)
	}
	s.session.Logout(ctx)
	s.log.Infof(ctx, "logged out")
}

// Profile — профиль текущего пользователя с ленивой загрузкой:
// если профиль уже загружен в рамках сессии, повторного запроса нет.
func (s *AuthService) Profile(ctx context.Context) (*domain.User, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if sess.ProfileLoaded && sess.User != nil {
		return sess.User, nil
	}

	user, err := s.gateway.Me(ctx)
	if err != nil {
		s.log.Errorf(ctx, "gateway.Me failed err=%v", err)
		return nil, err
	}
	s.session.SetProfile(ctx, *user)
	return user, nil
}

// RefreshProfile — пометить профиль на перезагрузку и загрузить заново.
func (s *AuthService) RefreshProfile(ctx context.Context) (*domain.User, error) {
	s.session.InvalidateProfile(ctx)
	return s.Profile(ctx)
}
