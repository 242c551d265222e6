package orchestrator

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/shaiso/Linker/internal/domain"
	"github.com/shaiso/Linker/internal/engine"
	"github.com/shaiso/Linker/internal/mq"
	"github.com/shaiso/Linker/internal/telemetry"
)

// WorkflowLookup возвращает определение workflow по имени.
// Для неизвестного имени возвращает *engine.NotFoundError.
type WorkflowLookup interface {
	GetWorkflow(ctx context.Context, name string) (*domain.WorkflowDefinition, error)
}

// Dispatcher отправляет link. Реализуется *dispatch.Dispatcher.
type Dispatcher interface {
	Send(ctx context.Context, linkName string, input map[string]string) ([]string, error)
}

// EventPublisher публикует событие о завершении workflow.
type EventPublisher interface {
	PublishWorkflowCompleted(ctx context.Context, payload mq.WorkflowCompletedPayload) error
}

// Config: конфигурация Orchestrator.
type Config struct {
	Workflows  WorkflowLookup
	Dispatcher Dispatcher

	// Events необязателен.
	Events EventPublisher

	Logger *slog.Logger
}

// Orchestrator выполняет workflow.
//
// Шаги выполняются строго последовательно в порядке объявления.
// Orchestrator не хранит состояние между вызовами Execute.
type Orchestrator struct {
	workflows  WorkflowLookup
	dispatcher Dispatcher
	events     EventPublisher
	logger     *slog.Logger
}

// New создаёт новый Orchestrator.
func New(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		workflows:  cfg.Workflows,
		dispatcher: cfg.Dispatcher,
		events:     cfg.Events,
		logger:     logger,
	}
}

// Execute выполняет workflow с входными параметрами.
//
// Неизвестный workflow возвращается как ошибка (*engine.NotFoundError).
// Ошибка разрешения параметров workflow не возвращается как ошибка:
// результат содержит Success=false, пустые ResolvedParameters и StepResults
// и текст ошибки в Error. Ошибки шагов записываются в StepResults.
func (o *Orchestrator) Execute(ctx context.Context, name string, input map[string]string) (result *domain.WorkflowResult, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "orchestrator.Execute")
	span.SetAttributes(attribute.String("linker.workflow", name))
	defer func() { telemetry.EndSpan(span, err) }()

	logger := telemetry.WithWorkflow(o.logger, name)
	logger.Debug("workflow phase", "phase", PhaseParametersPending)

	wf, err := o.workflows.GetWorkflow(ctx, name)
	if err != nil {
		telemetry.ObserveWorkflow(name, telemetry.ResultNotFound)
		logger.Warn("workflow lookup failed", "error", err)
		return nil, err
	}

	resolved, err := engine.ResolveParameters(wf.Parameters, input)
	if err != nil {
		var verr *engine.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}

		telemetry.ObserveWorkflow(name, telemetry.ResultInvalid)
		logger.Warn("workflow parameters invalid", "error", err)

		result = &domain.WorkflowResult{
			WorkflowName:       name,
			Success:            false,
			ResolvedParameters: map[string]string{},
			StepResults:        []domain.StepResult{},
			Error:              err.Error(),
		}
		o.publish(ctx, logger, result)
		return result, nil
	}
	logger.Debug("workflow phase", "phase", PhaseParametersResolved, "parameters", len(resolved))

	logger.Info("workflow started", "phase", PhaseStepsExecuting, "steps", len(wf.Steps))

	result = &domain.WorkflowResult{
		WorkflowName:       name,
		Success:            true,
		ResolvedParameters: resolved,
		StepResults:        make([]domain.StepResult, 0, len(wf.Steps)),
	}

	for _, step := range wf.Steps {
		sr := o.runStep(ctx, logger, wf.Name, step, resolved)
		result.StepResults = append(result.StepResults, sr)
		result.Success = result.Success && sr.Success
	}

	failed := result.FailedSteps()
	if result.Success {
		telemetry.ObserveWorkflow(name, telemetry.ResultOK)
		logger.Info("workflow completed", "phase", PhaseCompleted, "steps", len(result.StepResults))
	} else {
		telemetry.ObserveWorkflow(name, telemetry.ResultPartial)
		logger.Warn("workflow completed with failed steps",
			"phase", PhaseCompleted,
			"steps", len(result.StepResults),
			"failed", failed,
		)
	}
	span.SetAttributes(attribute.Int("linker.steps_failed", failed))

	o.publish(ctx, logger, result)

	return result, nil
}

// publish публикует событие workflow.completed. Ошибки только логируются.
func (o *Orchestrator) publish(ctx context.Context, logger *slog.Logger, result *domain.WorkflowResult) {
	if o.events == nil {
		return
	}

	payload := mq.WorkflowCompletedPayload{
		Workflow:    result.WorkflowName,
		Success:     result.Success,
		Steps:       len(result.StepResults),
		FailedSteps: result.FailedSteps(),
		Error:       result.Error,
	}
	if err := o.events.PublishWorkflowCompleted(ctx, payload); err != nil {
		logger.Warn("failed to publish workflow.completed event", "error", err)
	}
}
