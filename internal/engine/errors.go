package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Базовые ошибки, с которыми сравниваются типизированные ошибки через errors.Is.
var (
	// ErrNotFound: определение link или workflow не найдено.
	ErrNotFound = errors.New("definition not found")

	// ErrInvalidParameters: входные параметры не прошли проверку.
	ErrInvalidParameters = errors.New("invalid parameters")
)

// Виды определений для NotFoundError.
const (
	KindLink     = "Link"
	KindWorkflow = "Workflow"
)

// NotFoundError возвращается, когда определение с указанным именем отсутствует.
type NotFoundError struct {
	Kind string // KindLink или KindWorkflow
	Name string
}

// NewNotFoundError создаёт ошибку ненайденного определения.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// Error реализует интерфейс error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found.", e.Kind, e.Name)
}

// Unwrap возвращает ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError содержит все ошибки проверки параметров сразу,
// а не только первую.
type ValidationError struct {
	Errors []string
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	return "Invalid parameters: " + strings.Join(e.Errors, ", ")
}

// Unwrap возвращает ErrInvalidParameters.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameters
}

// missingParameter форматирует сообщение об отсутствующем обязательном параметре.
func missingParameter(name string) string {
	return fmt.Sprintf("Missing required parameter %q.", name)
}
