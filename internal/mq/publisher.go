package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageType: тип события.
type MessageType string

// Типы событий.
const (
	MessageTypeLinkDispatched    MessageType = "link.dispatched"
	MessageTypeWorkflowCompleted MessageType = "workflow.completed"
)

// Message: конверт события.
type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// LinkDispatchedPayload описывает результат отправки link.
type LinkDispatchedPayload struct {
	Link       string   `json:"link"`
	Success    bool     `json:"success"`
	Transports []string `json:"transports"`
	Error      string   `json:"error,omitempty"`
}

// WorkflowCompletedPayload описывает результат выполнения workflow.
type WorkflowCompletedPayload struct {
	Workflow    string `json:"workflow"`
	Success     bool   `json:"success"`
	Steps       int    `json:"steps"`
	FailedSteps int    `json:"failed_steps"`
	Error       string `json:"error,omitempty"`
}

// Publisher публикует события в RabbitMQ.
//
// Методы nil *Publisher ничего не делают, поэтому компоненты
// могут держать Publisher без проверки, настроен ли RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// newMessage создаёт конверт события с новым ID.
func newMessage(msgType MessageType, payload any) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// Publish публикует сообщение в ExchangeEvents с routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey RoutingKey, msg *Message) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(ExchangeEvents), // exchange
			string(routingKey),     // routing key
			false,                  // mandatory
			false,                  // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Type:         string(msg.Type),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", ExchangeEvents, routingKey, err)
		}

		p.logger.Debug("published event",
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)

		return nil
	})
}

// PublishLinkDispatched публикует событие об отправке link.
func (p *Publisher) PublishLinkDispatched(ctx context.Context, payload LinkDispatchedPayload) error {
	if p == nil {
		return nil
	}
	return p.Publish(ctx, RoutingKeyLinkDispatched, newMessage(MessageTypeLinkDispatched, payload))
}

// PublishWorkflowCompleted публикует событие о выполнении workflow.
func (p *Publisher) PublishWorkflowCompleted(ctx context.Context, payload WorkflowCompletedPayload) error {
	if p == nil {
		return nil
	}
	return p.Publish(ctx, RoutingKeyWorkflowCompleted, newMessage(MessageTypeWorkflowCompleted, payload))
}
