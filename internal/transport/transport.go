package transport

import (
	"context"

	"github.com/shaiso/Linker/internal/domain"
	"github.com/shaiso/Linker/internal/engine"
)

// ChatSender отправляет сообщение в чат конкретного провайдера (slack, telegram, discord).
type ChatSender interface {
	Send(ctx context.Context, transport, message string) error
}

// SmsSender отправляет SMS на номер.
type SmsSender interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

// MailSender отправляет письмо.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// WebhookPoster отправляет JSON POST запрос и возвращает HTTP статус.
type WebhookPoster interface {
	Post(ctx context.Context, url string, body any) (int, error)
}

// Transport: канал, готовый к отправке.
type Transport interface {
	// Name возвращает имя транспорта из определения канала.
	Name() string

	// Kind возвращает вариант транспорта.
	Kind() Kind

	// Send отправляет сообщение. params: разрешённые параметры link,
	// используются для интерполяции опций (например, subject письма).
	// Отсутствующие опции проверяются до любого сетевого вызова.
	Send(ctx context.Context, message string, params map[string]string) error
}

// Senders: клиенты, через которые транспорты отправляют сообщения.
// Любой клиент может быть nil: отправка через него вернёт ErrNotConfigured.
type Senders struct {
	Chat    ChatSender
	SMS     SmsSender
	Mail    MailSender
	Webhook WebhookPoster

	// WebhookURL: URL для webhook транспортов, один на процесс.
	WebhookURL string
}

// Resolver превращает определения каналов в Transport.
type Resolver struct {
	senders Senders
}

// NewResolver создаёт Resolver с указанными клиентами.
func NewResolver(senders Senders) *Resolver {
	return &Resolver{senders: senders}
}

// Resolve возвращает Transport для канала.
//
// Для нераспознанного имени возвращается транспорт, который падает
// с ErrUnsupported при отправке: ошибка возникает на позиции этого канала,
// после отправки предыдущих.
func (r *Resolver) Resolve(ch domain.ChannelDefinition) Transport {
	name := ch.Transport

	switch Classify(name) {
	case KindChat:
		return &chatTransport{name: name, sender: r.senders.Chat}
	case KindSMS:
		return &smsTransport{name: name, options: ch.Options, sender: r.senders.SMS}
	case KindEmail:
		return &emailTransport{name: name, options: ch.Options, sender: r.senders.Mail}
	case KindWebhook:
		return &webhookTransport{name: name, url: r.senders.WebhookURL, poster: r.senders.Webhook}
	default:
		return unsupportedTransport{name: name}
	}
}

// --- Chat ---

type chatTransport struct {
	name   string
	sender ChatSender
}

func (t *chatTransport) Name() string { return t.name }
func (t *chatTransport) Kind() Kind   { return KindChat }

func (t *chatTransport) Send(ctx context.Context, message string, _ map[string]string) error {
	if t.sender == nil {
		return notConfigured(t.name)
	}
	if err := t.sender.Send(ctx, t.name, message); err != nil {
		return sendFailed(t.name, err)
	}
	return nil
}

// --- SMS ---

type smsTransport struct {
	name    string
	options map[string]string
	sender  SmsSender
}

func (t *smsTransport) Name() string { return t.name }
func (t *smsTransport) Kind() Kind   { return KindSMS }

func (t *smsTransport) Send(ctx context.Context, message string, _ map[string]string) error {
	to, ok := t.options[OptionTo]
	if !ok {
		return missingOption(t.name, "SMS", OptionTo)
	}
	if t.sender == nil {
		return notConfigured(t.name)
	}
	if err := t.sender.Send(ctx, to, message); err != nil {
		return sendFailed(t.name, err)
	}
	return nil
}

// --- Email ---

type emailTransport struct {
	name    string
	options map[string]string
	sender  MailSender
}

func (t *emailTransport) Name() string { return t.name }
func (t *emailTransport) Kind() Kind   { return KindEmail }

func (t *emailTransport) Send(ctx context.Context, message string, params map[string]string) error {
	to, ok := t.options[OptionTo]
	if !ok {
		return missingOption(t.name, "Email", OptionTo)
	}
	if t.sender == nil {
		return notConfigured(t.name)
	}

	subject := message
	if s, ok := t.options[OptionSubject]; ok {
		subject = engine.Interpolate(s, params)
	}

	if err := t.sender.Send(ctx, to, subject, message); err != nil {
		return sendFailed(t.name, err)
	}
	return nil
}

// --- Webhook ---

type webhookTransport struct {
	name   string
	url    string
	poster WebhookPoster
}

// webhookPayload: тело запроса в формате Slack incoming webhook.
type webhookPayload struct {
	Text string `json:"text"`
}

func (t *webhookTransport) Name() string { return t.name }
func (t *webhookTransport) Kind() Kind   { return KindWebhook }

// Send считает успешным любой полученный ответ, статус не проверяется.
func (t *webhookTransport) Send(ctx context.Context, message string, _ map[string]string) error {
	if t.poster == nil || t.url == "" {
		return notConfigured(t.name)
	}
	if _, err := t.poster.Post(ctx, t.url, webhookPayload{Text: message}); err != nil {
		return sendFailed(t.name, err)
	}
	return nil
}

// --- Unsupported ---

type unsupportedTransport struct {
	name string
}

func (t unsupportedTransport) Name() string { return t.name }
func (t unsupportedTransport) Kind() Kind   { return KindUnsupported }

func (t unsupportedTransport) Send(context.Context, string, map[string]string) error {
	return unsupported(t.name)
}
