package domain

// StepResult содержит итог выполнения одного шага workflow.
type StepResult struct {
	StepName string `json:"step_name"`
	LinkName string `json:"link_name"`
	Success  bool   `json:"success"`

	// NotifiedTransports пуст (но не nil) при ошибке шага.
	NotifiedTransports []string `json:"notified_transports"`

	// Error заполняется только при ошибке шага.
	Error string `json:"error,omitempty"`
}

// SucceededStep создаёт успешный результат шага.
func SucceededStep(step StepDefinition, notified []string) StepResult {
	if notified == nil {
		notified = []string{}
	}
	return StepResult{
		StepName:           step.Name,
		LinkName:           step.Link,
		Success:            true,
		NotifiedTransports: notified,
	}
}

// FailedStep создаёт результат упавшего шага.
func FailedStep(step StepDefinition, errMsg string) StepResult {
	return StepResult{
		StepName:           step.Name,
		LinkName:           step.Link,
		Success:            false,
		NotifiedTransports: []string{},
		Error:              errMsg,
	}
}

// WorkflowResult содержит итог выполнения workflow.
type WorkflowResult struct {
	WorkflowName string `json:"workflow_name"`

	// Success: логическое И по всем шагам. true, если шагов нет.
	Success bool `json:"success"`

	ResolvedParameters map[string]string `json:"resolved_parameters"`
	StepResults        []StepResult      `json:"step_results"`

	// Error заполняется только при ошибке до начала выполнения шагов.
	Error string `json:"error,omitempty"`
}

// FailedSteps возвращает количество упавших шагов.
func (r *WorkflowResult) FailedSteps() int {
	n := 0
	for _, s := range r.StepResults {
		if !s.Success {
			n++
		}
	}
	return n
}
