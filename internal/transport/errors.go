package transport

import (
	"errors"
	"fmt"
)

// Причины ошибок транспорта. Проверяются через errors.Is.
var (
	// ErrUnsupported: имя транспорта не распознано.
	ErrUnsupported = errors.New("unsupported transport")

	// ErrMissingOption: у канала нет обязательной опции.
	ErrMissingOption = errors.New("missing channel option")

	// ErrNotConfigured: клиент транспорта не настроен.
	ErrNotConfigured = errors.New("transport not configured")

	// ErrSendFailed: клиент вернул ошибку при отправке.
	ErrSendFailed = errors.New("send failed")
)

// Error: ошибка отправки через конкретный канал.
type Error struct {
	Transport string // имя транспорта из определения канала
	Message   string // текст для пользователя
	Err       error  // причина
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap возвращает причину.
func (e *Error) Unwrap() error {
	return e.Err
}

func unsupported(name string) *Error {
	return &Error{
		Transport: name,
		Message:   fmt.Sprintf("Unsupported transport %q.", name),
		Err:       ErrUnsupported,
	}
}

func missingOption(name, label, option string) *Error {
	return &Error{
		Transport: name,
		Message:   fmt.Sprintf("%s channel requires %q option.", label, option),
		Err:       ErrMissingOption,
	}
}

func notConfigured(name string) *Error {
	return &Error{
		Transport: name,
		Message:   fmt.Sprintf("Transport %q is not configured.", name),
		Err:       ErrNotConfigured,
	}
}

func sendFailed(name string, err error) *Error {
	return &Error{
		Transport: name,
		Message:   fmt.Sprintf("%s: %v", name, err),
		Err:       fmt.Errorf("%w: %w", ErrSendFailed, err),
	}
}
