package repo

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/Linker/internal/domain"
	"github.com/shaiso/Linker/internal/engine"
)

// WorkflowRepo: каталог определений workflow.
type WorkflowRepo struct {
	catalog *catalog[domain.WorkflowDefinition]
}

// NewWorkflowRepo создаёт WorkflowRepo для каталога dir.
// Файлы, корень которых не является mapping, пропускаются.
func NewWorkflowRepo(dir string, logger *slog.Logger) *WorkflowRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkflowRepo{
		catalog: newCatalog(dir, func(name string, root *yaml.Node) (*domain.WorkflowDefinition, error) {
			if !isMapping(root) {
				logger.Warn("skipping workflow file without a mapping root", "workflow", name)
				return nil, nil
			}
			return parseWorkflow(name, root)
		}),
	}
}

// GetWorkflow возвращает workflow по имени.
func (r *WorkflowRepo) GetWorkflow(ctx context.Context, name string) (*domain.WorkflowDefinition, error) {
	wf, ok, err := r.catalog.get(name)
	if err != nil {
		return nil, fmt.Errorf("load workflows: %w", err)
	}
	if !ok {
		return nil, engine.NewNotFoundError(engine.KindWorkflow, name)
	}
	return wf, nil
}

// Has возвращает true, если workflow с таким именем существует.
func (r *WorkflowRepo) Has(ctx context.Context, name string) (bool, error) {
	_, ok, err := r.catalog.get(name)
	if err != nil {
		return false, fmt.Errorf("load workflows: %w", err)
	}
	return ok, nil
}

// List возвращает все workflow, отсортированные по имени.
func (r *WorkflowRepo) List(ctx context.Context) ([]*domain.WorkflowDefinition, error) {
	workflows, err := r.catalog.list()
	if err != nil {
		return nil, fmt.Errorf("load workflows: %w", err)
	}
	return workflows, nil
}

type yamlWorkflow struct {
	Description string     `yaml:"description"`
	Parameters  yaml.Node  `yaml:"parameters"`
	Steps       []yamlStep `yaml:"steps"`
}

type yamlStep struct {
	Name       *string           `yaml:"name"`
	Link       *string           `yaml:"link"`
	Parameters map[string]string `yaml:"parameters"`
}

func parseWorkflow(name string, root *yaml.Node) (*domain.WorkflowDefinition, error) {
	var raw yamlWorkflow
	if err := root.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: workflow %q: %v", ErrInvalidDefinition, name, err)
	}

	params, err := decodeParameters(&raw.Parameters, fmt.Sprintf("workflow %q", name))
	if err != nil {
		return nil, err
	}

	steps := make([]domain.StepDefinition, 0, len(raw.Steps))
	for i, s := range raw.Steps {
		if s.Name == nil || s.Link == nil {
			return nil, &InvalidStepError{Workflow: name, Index: i}
		}
		stepParams := s.Parameters
		if stepParams == nil {
			stepParams = map[string]string{}
		}
		steps = append(steps, domain.StepDefinition{
			Name:       *s.Name,
			Link:       *s.Link,
			Parameters: stepParams,
		})
	}

	return &domain.WorkflowDefinition{
		Name:        name,
		Description: raw.Description,
		Parameters:  params,
		Steps:       steps,
	}, nil
}

// InvalidStepError: у шага нет обязательного поля name или link.
type InvalidStepError struct {
	Workflow string
	Index    int
}

// Error реализует интерфейс error.
func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("Step #%d in workflow %q is missing required \"name\" or \"link\" field.", e.Index, e.Workflow)
}

// Unwrap возвращает ErrInvalidDefinition.
func (e *InvalidStepError) Unwrap() error {
	return ErrInvalidDefinition
}
