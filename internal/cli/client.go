package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// NotifyResponse: результат отправки link.
type NotifyResponse struct {
	Status           string   `json:"status"`
	Link             string   `json:"link"`
	ChannelsNotified []string `json:"channels_notified"`
}

// ParameterResponse: параметр link или workflow.
type ParameterResponse struct {
	Name     string  `json:"name"`
	Required bool    `json:"required"`
	Type     string  `json:"type"`
	Default  *string `json:"default,omitempty"`
}

// LinkResponse: link из API.
type LinkResponse struct {
	Name            string              `json:"name"`
	MessageTemplate string              `json:"message_template"`
	Parameters      []ParameterResponse `json:"parameters"`
	Transports      []string            `json:"transports"`
}

// StepResponse: шаг workflow из API.
type StepResponse struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// WorkflowResponse: workflow из API.
type WorkflowResponse struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Parameters  []ParameterResponse `json:"parameters"`
	Steps       []StepResponse      `json:"steps"`
}

// StepResult: результат шага workflow.
type StepResult struct {
	StepName           string   `json:"step_name"`
	LinkName           string   `json:"link_name"`
	Success            bool     `json:"success"`
	NotifiedTransports []string `json:"notified_transports"`
	Error              string   `json:"error,omitempty"`
}

// WorkflowResult: результат выполнения workflow.
type WorkflowResult struct {
	WorkflowName       string            `json:"workflow_name"`
	Success            bool              `json:"success"`
	ResolvedParameters map[string]string `json:"resolved_parameters"`
	StepResults        []StepResult      `json:"step_results"`
	Error              string            `json:"error,omitempty"`
}

// APIError: ответ API со статусом ошибки.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error: HTTP %d", e.StatusCode)
	}
	return e.Message
}

// --- API response wrappers ---

type listResponse struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

type errorResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// --- Client ---

// Client: HTTP-клиент для Linker API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Notify отправляет link с параметрами.
func (c *Client) Notify(ctx context.Context, link string, params map[string]string) (*NotifyResponse, error) {
	path := "/notify/" + url.PathEscape(link) + encodeQuery(params)

	resp, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return nil, err
	}

	var nr NotifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &nr, nil
}

// RunWorkflow выполняет workflow. Параметры передаются JSON объектом в теле.
//
// Результат возвращается и при частичной неудаче (207), и при невалидных
// параметрах (400): в обоих случаях Success равен false.
func (c *Client) RunWorkflow(ctx context.Context, name string, params map[string]string) (*WorkflowResult, error) {
	if params == nil {
		params = map[string]string{}
	}

	resp, err := c.do(ctx, http.MethodPost, "/workflow/"+url.PathEscape(name), params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusMultiStatus, http.StatusBadRequest:
	default:
		if err := c.checkError(resp); err != nil {
			return nil, err
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result WorkflowResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// 400 без результата: запрос отклонён до запуска workflow.
	if result.WorkflowName == "" {
		var er errorResponse
		_ = json.Unmarshal(data, &er)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: er.Message, Errors: er.Errors}
	}
	return &result, nil
}

// ListLinks возвращает все link.
func (c *Client) ListLinks(ctx context.Context) ([]LinkResponse, error) {
	var links []LinkResponse
	err := c.list(ctx, "/links", &links)
	return links, err
}

// ListWorkflows возвращает все workflow.
func (c *Client) ListWorkflows(ctx context.Context) ([]WorkflowResponse, error) {
	var workflows []WorkflowResponse
	err := c.list(ctx, "/workflows", &workflows)
	return workflows, err
}

// --- HTTP helpers ---

func encodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return "?" + values.Encode()
}

func (c *Client) list(ctx context.Context, path string, result any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return json.Unmarshal(lr.Data, result)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return &APIError{StatusCode: resp.StatusCode}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: er.Message, Errors: er.Errors}
}
