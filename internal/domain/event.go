package domain

// Сущности и действия событий изменения данных (топик инвалидации).
const (
	EventEntityProduct  = "product"
	EventEntityCategory = "category"
	EventEntityBrand    = "brand"
	EventEntityOrder    = "order"

	EventActionCreated = "created"
	EventActionUpdated = "updated"
	EventActionDeleted = "deleted"
)

// ChangeEvent — событие изменения данных на бэкенде.
// Инвалидация по событию намеренно грубая: любое изменение товара
// сбрасывает весь кэш каталога (корректность важнее точности).
type ChangeEvent struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
	UserID string `json:"user_id,omitempty"`
}
