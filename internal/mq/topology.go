package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange: тип для имени обменника.
type Exchange string

// Queue: тип для имени очереди.
type Queue string

// RoutingKey: тип для ключа маршрутизации.
type RoutingKey string

const (
	// ExchangeEvents получает все события Linker.
	ExchangeEvents Exchange = "linker.events"

	// QueueAudit собирает все события для внешних потребителей.
	QueueAudit Queue = "linker.audit"
)

// Routing keys совпадают с типами сообщений.
const (
	RoutingKeyLinkDispatched    RoutingKey = "link.dispatched"
	RoutingKeyWorkflowCompleted RoutingKey = "workflow.completed"

	// routingKeyAll привязывает очередь аудита ко всем событиям.
	routingKeyAll RoutingKey = "#"
)

// SetupTopology объявляет exchange, очередь аудита и привязку.
// Все объявления идемпотентны.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		if err := ch.ExchangeDeclare(
			string(ExchangeEvents), // name
			amqp.ExchangeTopic,     // type
			true,                   // durable
			false,                  // auto-deleted
			false,                  // internal
			false,                  // no-wait
			nil,                    // arguments
		); err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeEvents, err)
		}

		if _, err := ch.QueueDeclare(
			string(QueueAudit), // name
			true,               // durable
			false,              // delete when unused
			false,              // exclusive
			false,              // no-wait
			nil,                // arguments
		); err != nil {
			return fmt.Errorf("declare queue %s: %w", QueueAudit, err)
		}

		if err := ch.QueueBind(
			string(QueueAudit),
			string(routingKeyAll),
			string(ExchangeEvents),
			false,
			nil,
		); err != nil {
			return fmt.Errorf("bind queue %s to %s: %w", QueueAudit, ExchangeEvents, err)
		}

		return nil
	})
}
