package sender

import "errors"

var (
	// ErrNotConfigured: для провайдера не заданы адрес или учётные данные.
	ErrNotConfigured = errors.New("sender not configured")

	// ErrRequest: провайдер ответил статусом вне 2xx.
	ErrRequest = errors.New("provider request failed")
)
