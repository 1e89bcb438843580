package domain

// User — аутентифицированный пользователь.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Session — состояние «кто вошёл» и токен авторизации исходящих запросов.
// Единственный экземпляр на процесс; очищается атомарно при logout.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	ProfileLoaded   bool   `json:"profile_loaded"`
	AddressesLoaded bool   `json:"addresses_loaded"`
}

// IsAuthenticated — производный признак: есть токен — есть сессия.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}
