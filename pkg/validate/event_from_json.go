package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mkarpushin/shopfront/internal/domain"
)

// EventFromJSON — строгое декодирование и валидация события изменения.
// Неизвестные поля и хвостовые данные считаются нарушением контракта.
func EventFromJSON(raw []byte) (*domain.ChangeEvent, error) {
	var event domain.ChangeEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidInput, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidInput)
	}
	if err := Event(&event); err != nil {
		return nil, err
	}
	return &event, nil
}
