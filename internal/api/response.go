package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shaiso/Linker/internal/engine"
)

// ListResponse: структура ответа со списком.
type ListResponse struct {
	Data  any `json:"data"`
	Total int `json:"total"`
}

// JSON отправляет JSON ответ.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// List отправляет ответ со списком.
func List(w http.ResponseWriter, data any, total int) {
	JSON(w, http.StatusOK, ListResponse{Data: data, Total: total})
}

// Error отправляет ответ с ошибкой.
func Error(w http.ResponseWriter, status int, message string, errs []string) {
	JSON(w, status, StatusResponse{
		Status:  StatusError,
		Message: message,
		Errors:  errs,
	})
}

// BadRequest отправляет ошибку 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message, nil)
}

// NotFound отправляет ошибку 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message, nil)
}

// InternalError отправляет ошибку 500.
func InternalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, "internal server error", nil)
}

// HandleLookupError отвечает 404 для ненайденного определения
// и 400 со списком ошибок для невалидных параметров.
// Возвращает false, если ошибка другого вида и ответ не отправлен.
func HandleLookupError(w http.ResponseWriter, err error) bool {
	var nf *engine.NotFoundError
	if errors.As(err, &nf) {
		NotFound(w, nf.Error())
		return true
	}

	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		Error(w, http.StatusBadRequest, verr.Error(), verr.Errors)
		return true
	}

	return false
}

// queryInput собирает параметры из query string. Для повторяющихся
// ключей берётся первое значение.
func queryInput(r *http.Request) map[string]string {
	query := r.URL.Query()
	input := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			input[key] = values[0]
		}
	}
	return input
}
