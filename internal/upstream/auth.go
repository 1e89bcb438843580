package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkarpushin/shopfront/internal/domain"
	"github.com/mkarpushin/shopfront/internal/ports"
)

var _ ports.AuthGateway = (*Client)(nil)

type userWire struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func (w *userWire) toDomain() *domain.User {
	return &domain.User{
		ID:      w.ID,
		Name:    w.Name,
		Email:   w.Email,
		IsAdmin: w.IsAdmin,
	}
}

type authResponse struct {
	User  userWire `json:"user"`
	Token string   `json:"token"`
}

// Login — POST /auth/login; возвращает профиль и bearer-токен.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	return resp.User.toDomain(), resp.Token, nil
}

// Register — POST /auth/register; сервер сразу выдаёт токен новой сессии.
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, &resp); err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}
	return resp.User.toDomain(), resp.Token, nil
}

// Me — GET /auth/me: профиль по текущему токену.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var w userWire
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &w); err != nil {
		return nil, err
	}
	return w.toDomain(), nil
}
