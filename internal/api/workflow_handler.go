package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// maxBodySize ограничивает тело запроса workflow.
const maxBodySize = 1 << 20 // 1 MB

// RunWorkflow выполняет workflow.
// POST /workflow/{workflowName}
//
// Параметры берутся из query string и JSON объекта в теле; значения
// из тела перекрывают query. Ответ:
//   - 200: все шаги успешны
//   - 207: хотя бы один шаг упал
//   - 400: параметры workflow невалидны (результат в теле)
//   - 404: workflow не найден
func (h *Handler) RunWorkflow(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("workflowName")

	input := queryInput(r)
	body, err := decodeBodyInput(r)
	if err != nil {
		BadRequest(w, err.Error())
		return
	}
	for k, v := range body {
		input[k] = v
	}

	result, err := h.runner.Execute(r.Context(), name, input)
	if err != nil {
		if HandleLookupError(w, err) {
			return
		}
		InternalError(w, h.logger, err)
		return
	}

	switch {
	case result.Error != "":
		JSON(w, http.StatusBadRequest, result)
	case !result.Success:
		JSON(w, http.StatusMultiStatus, result)
	default:
		JSON(w, http.StatusOK, result)
	}
}

// decodeBodyInput читает JSON объект из тела запроса. Пустое тело допустимо.
// Числа и bool приводятся к строкам, вложенные значения отклоняются.
func decodeBodyInput(r *http.Request) (map[string]string, error) {
	if r.Body == nil {
		return nil, nil
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.New("invalid request body: expected a JSON object")
	}

	input := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			input[key] = v
		case json.Number:
			input[key] = v.String()
		case bool:
			input[key] = strconv.FormatBool(v)
		case nil:
			input[key] = ""
		default:
			return nil, fmt.Errorf("invalid request body: parameter %q must be a scalar", key)
		}
	}
	return input, nil
}
