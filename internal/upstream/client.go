// Пакет upstream — HTTP-адаптер к удалённому commerce API.
// Оборачивает исходящие запросы: базовый URL из конфигурации, JSON,
// bearer-токен из персистентной сессии на каждый запрос.
// Формат ответа декодируется строго (DisallowUnknownFields): расхождение
// контракта — ошибка сразу, а не тихий fallback по нескольким полям.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/pkg/metrics"
)

// APIError — ошибка уровня API (статус >= 400). Автоматических ретраев нет:
// каждая вызывающая сторона решает сама, как реагировать.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream: status=%d message=%q", e.Status, e.Message)
}

// IsNotFound — удобный предикат для 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// Client — клиент commerce API; реализует все gateway-порты.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  ports.TokenSource
	log     ports.Logger
}

// NewClient — DI-конструктор. tokens — узкий контракт чтения токена сессии;
// зависимость односторонняя: сессия про HTTP-слой не знает.
func NewClient(baseURL string, timeout time.Duration, tokens ports.TokenSource, log ports.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("upstream base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}, nil
}

// do — единая точка исходящего запроса: сериализация тела, заголовки,
// авторизация, метрики и строгое декодирование ответа в out (если не nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Токен читается из сессии на каждый запрос — logout действует немедленно.
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(method, "error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.UpstreamRequests.WithLabelValues(method, statusClass(resp.StatusCode)).Inc()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.apiError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := decodeStrict(resp.Body, out); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return nil
}

// apiError — извлекает сообщение из тела вида {"error": "..."}.
func (c *Client) apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var wire struct {
		Error string `json:"error"`
	}
	message := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(raw, &wire); err == nil && wire.Error != "" {
		message = wire.Error
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}

// decodeStrict — строгое декодирование: неизвестные поля и хвостовые
// данные после объекта считаются нарушением контракта.
func decodeStrict(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid response json: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid response json: trailing data")
	}
	return nil
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
