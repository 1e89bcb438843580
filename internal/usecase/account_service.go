package usecase

import (
	"context"
	"sync"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/pkg/validate"
)

// AccountService — адреса доставки (с ленивой загрузкой на сессию),
// форма обратной связи и админ-статистика.
type AccountService struct {
	gateway ports.AccountGateway
	session ports.SessionStore
	log     ports.Logger

	mu        sync.RWMutex
	addresses []domain.Address // локальное зеркало; валидно, пока AddressesLoaded
}

// NewAccountService — DI-конструктор.
func NewAccountService(
	gateway ports.AccountGateway,
	session ports.SessionStore,
	log ports.Logger,
) *AccountService {
	return &AccountService{
		gateway: gateway,
		session: session,
		log:     log,
	}
}

// Addresses — адреса текущего пользователя; загружаются один раз на сессию.
// Флаг загрузки живёт в сессии и сбрасывается при logout вместе с ней.
func (s *AccountService) Addresses(ctx context.Context) ([]domain.Address, error) {
	sess := s.session.Current()
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if sess.AddressesLoaded {
		s.mu.RLock()
		cached := make([]domain.Address, len(s.addresses))
		copy(cached, s.addresses)
		s.mu.RUnlock()
		return cached, nil
	}

	addresses, err := s.gateway.ListAddresses(ctx)
	if err != nil {
		s.log.Errorf(ctx, "gateway.ListAddresses failed err=%v", err)
		return nil, err
	}

	s.mu.Lock()
	s.addresses = addresses
	s.mu.Unlock()
	s.session.SetAddressesLoaded(ctx, true)
	return addresses, nil
}

// CreateAddress — добавить адрес; локальное зеркало пополняется по ответу сервера.
func (s *AccountService) CreateAddress(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	created, err := s.gateway.CreateAddress(ctx, a)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.addresses = append(s.addresses, *created)
	s.mu.Unlock()
	return created, nil
}

// DeleteAddress — удалить адрес и выкинуть его из локального зеркала.
func (s *AccountService) DeleteAddress(ctx context.Context, id string) error {
	if !s.session.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	if err := s.gateway.DeleteAddress(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.addresses[:0]
	for _, a := range s.addresses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.addresses = kept
	s.mu.Unlock()
	return nil
}

// SendContactMessage — отправка обращения; сессия не требуется.
func (s *AccountService) SendContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	if err := validate.ContactMessage(m); err != nil {
		return err
	}
	return s.gateway.SendContactMessage(ctx, m)
}

// DashboardStats — сводка для админ-панели; напрямую из API.
func (s *AccountService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.gateway.DashboardStats(ctx)
}
