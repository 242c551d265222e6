package orchestrator

// Phase: стадия выполнения workflow. Используется в логах.
type Phase string

const (
	PhaseParametersPending  Phase = "PARAMETERS_PENDING"
	PhaseParametersResolved Phase = "PARAMETERS_RESOLVED"
	PhaseStepsExecuting     Phase = "STEPS_EXECUTING"
	PhaseCompleted          Phase = "COMPLETED"
)

// String возвращает имя фазы.
func (p Phase) String() string {
	return string(p)
}
