package api

import (
	"github.com/shaiso/Linker/internal/domain"
)

// Статусы в теле ответа.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// NotifyResponse: ответ на успешную отправку link.
type NotifyResponse struct {
	Status           string   `json:"status"`
	Link             string   `json:"link"`
	ChannelsNotified []string `json:"channels_notified"`
}

// StatusResponse: ответ с ошибкой.
type StatusResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ParameterResponse описывает параметр link или workflow.
type ParameterResponse struct {
	Name     string  `json:"name"`
	Required bool    `json:"required"`
	Type     string  `json:"type"`
	Default  *string `json:"default,omitempty"`
}

// LinkResponse описывает link.
type LinkResponse struct {
	Name            string              `json:"name"`
	MessageTemplate string              `json:"message_template"`
	Parameters      []ParameterResponse `json:"parameters"`
	Transports      []string            `json:"transports"`
}

// StepResponse описывает шаг workflow.
type StepResponse struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// WorkflowResponse описывает workflow.
type WorkflowResponse struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Parameters  []ParameterResponse `json:"parameters"`
	Steps       []StepResponse      `json:"steps"`
}

// ParametersFromDomain конвертирует определения параметров.
func ParametersFromDomain(params []domain.ParameterDefinition) []ParameterResponse {
	out := make([]ParameterResponse, len(params))
	for i, p := range params {
		out[i] = ParameterResponse{
			Name:     p.Name,
			Required: p.Required,
			Type:     p.Type,
			Default:  p.Default,
		}
	}
	return out
}

// LinkFromDomain конвертирует domain.LinkDefinition в LinkResponse.
func LinkFromDomain(l *domain.LinkDefinition) LinkResponse {
	return LinkResponse{
		Name:            l.Name,
		MessageTemplate: l.MessageTemplate,
		Parameters:      ParametersFromDomain(l.Parameters),
		Transports:      l.Transports(),
	}
}

// WorkflowFromDomain конвертирует domain.WorkflowDefinition в WorkflowResponse.
func WorkflowFromDomain(w *domain.WorkflowDefinition) WorkflowResponse {
	steps := make([]StepResponse, len(w.Steps))
	for i, s := range w.Steps {
		steps[i] = StepResponse{Name: s.Name, Link: s.Link}
	}
	return WorkflowResponse{
		Name:        w.Name,
		Description: w.Description,
		Parameters:  ParametersFromDomain(w.Parameters),
		Steps:       steps,
	}
}
