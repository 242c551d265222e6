package sender

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTelegramBaseURL = "https://api.telegram.org"

// ChatOptions: адреса и учётные данные чат-провайдеров.
// Пустое значение отключает провайдера.
type ChatOptions struct {
	SlackURL   string // incoming webhook URL
	DiscordURL string // webhook URL канала

	TelegramToken   string
	TelegramChatID  string
	TelegramBaseURL string // по умолчанию https://api.telegram.org

	Timeout time.Duration
}

// ChatClient отправляет сообщения в Slack, Discord и Telegram.
type ChatClient struct {
	opts   ChatOptions
	client *http.Client
}

// NewChatClient создаёт ChatClient.
func NewChatClient(opts ChatOptions) *ChatClient {
	if opts.TelegramBaseURL == "" {
		opts.TelegramBaseURL = defaultTelegramBaseURL
	}
	return &ChatClient{
		opts:   opts,
		client: newHTTPClient(opts.Timeout),
	}
}

// Send отправляет сообщение провайдеру transport ("slack", "discord", "telegram").
func (c *ChatClient) Send(ctx context.Context, transport, message string) error {
	switch transport {
	case "slack":
		if c.opts.SlackURL == "" {
			return fmt.Errorf("%w: slack webhook url is empty", ErrNotConfigured)
		}
		return c.post(ctx, "slack", c.opts.SlackURL, map[string]string{"text": message})

	case "discord":
		if c.opts.DiscordURL == "" {
			return fmt.Errorf("%w: discord webhook url is empty", ErrNotConfigured)
		}
		return c.post(ctx, "discord", c.opts.DiscordURL, map[string]string{"content": message})

	case "telegram":
		if c.opts.TelegramToken == "" || c.opts.TelegramChatID == "" {
			return fmt.Errorf("%w: telegram token or chat id is empty", ErrNotConfigured)
		}
		url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(c.opts.TelegramBaseURL, "/"), c.opts.TelegramToken)
		return c.post(ctx, "telegram", url, map[string]string{
			"chat_id": c.opts.TelegramChatID,
			"text":    message,
		})

	default:
		return fmt.Errorf("%w: unknown chat provider %q", ErrNotConfigured, transport)
	}
}

func (c *ChatClient) post(ctx context.Context, provider, url string, body any) error {
	resp, err := postJSON(ctx, c.client, url, body)
	if err != nil {
		return fmt.Errorf("%s: %w", provider, err)
	}
	defer drain(resp)

	return checkStatus(provider, resp)
}
