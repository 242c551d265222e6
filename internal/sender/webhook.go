package sender

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// WebhookClient отправляет JSON на произвольный URL.
type WebhookClient struct {
	client *http.Client
}

// NewWebhookClient создаёт WebhookClient с таймаутом запроса.
func NewWebhookClient(timeout time.Duration) *WebhookClient {
	return &WebhookClient{client: newHTTPClient(timeout)}
}

// Post отправляет body как JSON и возвращает HTTP статус ответа.
// Статус не проверяется: ошибкой считается только сбой самого запроса.
func (c *WebhookClient) Post(ctx context.Context, url string, body any) (int, error) {
	resp, err := postJSON(ctx, c.client, url, body)
	if err != nil {
		return 0, fmt.Errorf("webhook: %w", err)
	}
	defer drain(resp)

	return resp.StatusCode, nil
}
