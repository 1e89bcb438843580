package ports

import (
	"context"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// TokenSource — чтение токена авторизации. HTTP-клиент зависит от этого
// узкого контракта, а не от всего SessionStore (односторонняя зависимость:
// сессия ничего не знает про HTTP).
type TokenSource interface {
	Token() string
}

// SessionStore — единственный источник правды о текущей сессии.
type SessionStore interface {
	TokenSource

	// Login — установить пользователя и токен, профиль считается загруженным.
	Login(ctx context.Context, user domain.User, token string)

	// Logout — атомарно очистить пользователя, токен и все флаги загрузки.
	Logout(ctx context.Context)

	// IsAuthenticated — производный признак (токен установлен).
	IsAuthenticated() bool

	// Current — копия состояния сессии.
	Current() domain.Session

	// SetProfile — обновить профиль после ленивой загрузки.
	SetProfile(ctx context.Context, user domain.User)

	// InvalidateProfile — пометить профиль на перезагрузку без logout.
	InvalidateProfile(ctx context.Context)

	// SetAddressesLoaded — флаг загрузки адресов (сбрасывается при logout).
	SetAddressesLoaded(ctx context.Context, loaded bool)
}
