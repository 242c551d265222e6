package orchestrator

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/shaiso/Linker/internal/domain"
	"github.com/shaiso/Linker/internal/engine"
	"github.com/shaiso/Linker/internal/telemetry"
)

// runStep выполняет один шаг и всегда возвращает его результат.
// Ошибки и panic превращаются в неуспешный StepResult.
func (o *Orchestrator) runStep(
	ctx context.Context,
	logger *slog.Logger,
	workflow string,
	step domain.StepDefinition,
	resolved map[string]string,
) (sr domain.StepResult) {
	ctx, span := telemetry.Tracer().Start(ctx, "orchestrator.step")
	span.SetAttributes(
		attribute.String("linker.step", step.Name),
		attribute.String("linker.link", step.Link),
	)

	logger = telemetry.WithStep(logger, step.Name, step.Link)

	var stepErr error
	defer func() {
		if v := recover(); v != nil {
			stepErr = panicError(v)
			sr = domain.FailedStep(step, stepErr.Error())
		}

		telemetry.ObserveStep(workflow, sr.Success)
		telemetry.EndSpan(span, stepErr)

		if sr.Success {
			logger.Info("step succeeded", "transports", sr.NotifiedTransports)
		} else {
			logger.Warn("step failed", "error", sr.Error)
		}
	}()

	params := engine.InterpolateMap(step.Parameters, resolved)

	notified, err := o.dispatcher.Send(ctx, step.Link, params)
	if err != nil {
		stepErr = err
		return domain.FailedStep(step, err.Error())
	}

	return domain.SucceededStep(step, notified)
}
