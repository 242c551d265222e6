package domain

// WorkflowDefinition описывает упорядоченную цепочку шагов,
// разделяющих один набор разрешённых входных параметров.
type WorkflowDefinition struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Parameters  []ParameterDefinition `json:"parameters"`
	Steps       []StepDefinition      `json:"steps"`
}

// StepDefinition описывает один шаг workflow.
type StepDefinition struct {
	// Name шага, попадает в StepResult.
	Name string `json:"name" yaml:"name"`

	// Link: имя вызываемого link.
	Link string `json:"link" yaml:"link"`

	// Parameters: имя параметра link → шаблон значения.
	// Значения могут ссылаться на параметры workflow через {placeholder}.
	Parameters map[string]string `json:"parameters,omitempty" yaml:"parameters"`
}
