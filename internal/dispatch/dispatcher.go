package dispatch

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/shaiso/Linker/internal/domain"
	"github.com/shaiso/Linker/internal/engine"
	"github.com/shaiso/Linker/internal/mq"
	"github.com/shaiso/Linker/internal/telemetry"
	"github.com/shaiso/Linker/internal/transport"
)

// LinkLookup возвращает определение link по имени.
// Для неизвестного имени возвращает *engine.NotFoundError.
type LinkLookup interface {
	GetLink(ctx context.Context, name string) (*domain.LinkDefinition, error)
}

// TransportResolver превращает определение канала в Transport.
type TransportResolver interface {
	Resolve(ch domain.ChannelDefinition) transport.Transport
}

// EventPublisher публикует событие об отправке link.
type EventPublisher interface {
	PublishLinkDispatched(ctx context.Context, payload mq.LinkDispatchedPayload) error
}

// Config: зависимости Dispatcher.
type Config struct {
	Links    LinkLookup
	Resolver TransportResolver

	// Events необязателен.
	Events EventPublisher

	Logger *slog.Logger
}

// Dispatcher отправляет link по каналам.
type Dispatcher struct {
	links    LinkLookup
	resolver TransportResolver
	events   EventPublisher
	logger   *slog.Logger
}

// New создаёт Dispatcher.
func New(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		links:    cfg.Links,
		resolver: cfg.Resolver,
		events:   cfg.Events,
		logger:   logger,
	}
}

// Send отправляет link с входными параметрами и возвращает имена
// транспортов, через которые сообщение ушло, в порядке каналов.
//
// Ошибки поиска (*engine.NotFoundError), проверки параметров
// (*engine.ValidationError) и транспорта (*transport.Error) возвращаются
// без обёртки. Link без каналов возвращает пустой срез.
func (d *Dispatcher) Send(ctx context.Context, linkName string, input map[string]string) (notified []string, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "dispatch.Send")
	span.SetAttributes(attribute.String("linker.link", linkName))
	defer func() { telemetry.EndSpan(span, err) }()

	logger := telemetry.WithLink(d.logger, linkName)

	link, err := d.links.GetLink(ctx, linkName)
	if err != nil {
		telemetry.ObserveLinkDispatch(linkName, telemetry.ResultNotFound)
		logger.Warn("link lookup failed", "error", err)
		return nil, err
	}

	resolved, err := engine.ResolveParameters(link.Parameters, input)
	if err != nil {
		telemetry.ObserveLinkDispatch(linkName, telemetry.ResultInvalid)
		logger.Warn("link parameters invalid", "error", err)
		return nil, err
	}

	message := engine.Interpolate(link.MessageTemplate, resolved)

	notified = make([]string, 0, len(link.Channels))
	for i, ch := range link.Channels {
		t := d.resolver.Resolve(ch)

		if err := d.deliver(ctx, t, message, resolved); err != nil {
			telemetry.ObserveLinkDispatch(linkName, telemetry.ResultFailed)
			logger.Error("channel failed, aborting remaining channels",
				"transport", t.Name(),
				"channel", i,
				"remaining", len(link.Channels)-i-1,
				"error", err,
			)
			d.publish(ctx, logger, mq.LinkDispatchedPayload{
				Link:       linkName,
				Success:    false,
				Transports: notified,
				Error:      err.Error(),
			})
			return nil, err
		}

		notified = append(notified, t.Name())
	}

	telemetry.ObserveLinkDispatch(linkName, telemetry.ResultOK)
	span.SetAttributes(attribute.StringSlice("linker.transports", notified))
	logger.Info("link dispatched", "transports", notified)

	d.publish(ctx, logger, mq.LinkDispatchedPayload{
		Link:       linkName,
		Success:    true,
		Transports: notified,
	})

	return notified, nil
}

// deliver отправляет сообщение через один транспорт и записывает метрики.
func (d *Dispatcher) deliver(ctx context.Context, t transport.Transport, message string, params map[string]string) error {
	start := time.Now()
	err := t.Send(ctx, message, params)

	result := telemetry.ResultOK
	if err != nil {
		result = telemetry.ResultFailed
	}
	telemetry.ObserveDelivery(t.Name(), t.Kind().String(), result, time.Since(start))

	return err
}

// publish публикует событие. Ошибка публикации не влияет на результат отправки.
func (d *Dispatcher) publish(ctx context.Context, logger *slog.Logger, payload mq.LinkDispatchedPayload) {
	if d.events == nil {
		return
	}
	if err := d.events.PublishLinkDispatched(ctx, payload); err != nil {
		logger.Warn("failed to publish link.dispatched event", "error", err)
	}
}
