package api

import (
	"context"
	"log/slog"

	"github.com/shaiso/Linker/internal/domain"
)

// Notifier отправляет link. Реализуется *dispatch.Dispatcher.
type Notifier interface {
	Send(ctx context.Context, linkName string, input map[string]string) ([]string, error)
}

// WorkflowRunner выполняет workflow. Реализуется *orchestrator.Orchestrator.
type WorkflowRunner interface {
	Execute(ctx context.Context, name string, input map[string]string) (*domain.WorkflowResult, error)
}

// LinkCatalog перечисляет определения link.
type LinkCatalog interface {
	List(ctx context.Context) ([]*domain.LinkDefinition, error)
}

// WorkflowCatalog перечисляет определения workflow.
type WorkflowCatalog interface {
	List(ctx context.Context) ([]*domain.WorkflowDefinition, error)
}

// Handler: главный обработчик API с зависимостями.
type Handler struct {
	notifier  Notifier
	runner    WorkflowRunner
	links     LinkCatalog
	workflows WorkflowCatalog
	logger    *slog.Logger
}

// Config: зависимости для создания Handler.
type Config struct {
	Notifier  Notifier
	Runner    WorkflowRunner
	Links     LinkCatalog
	Workflows WorkflowCatalog
	Logger    *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		notifier:  cfg.Notifier,
		runner:    cfg.Runner,
		links:     cfg.Links,
		workflows: cfg.Workflows,
		logger:    logger,
	}
}
