package domain

// ParameterDefinition описывает входной параметр link или workflow.
//
// Type носит справочный характер: значение никогда не проверяется
// и не приводится к типу. Все разрешённые значения остаются строками.
type ParameterDefinition struct {
	// Name уникально в пределах владеющего определения.
	Name string `json:"name" yaml:"-"`

	// Required: обязательный ли параметр. В YAML по умолчанию true.
	Required bool `json:"required" yaml:"required"`

	// Type: "string", "number" и т.д. В YAML по умолчанию "string".
	Type string `json:"type" yaml:"type"`

	// Default используется для необязательного параметра, если он не передан.
	// nil означает, что значения по умолчанию нет.
	Default *string `json:"default,omitempty" yaml:"default"`
}

// HasDefault возвращает true, если у параметра есть значение по умолчанию.
func (p ParameterDefinition) HasDefault() bool {
	return p.Default != nil
}

// ChannelDefinition описывает один транспорт, подключённый к link.
type ChannelDefinition struct {
	// Transport: "slack", "telegram", "discord", "sms", "email", "slack-webhook".
	Transport string `json:"transport" yaml:"transport"`

	// Options: например "to" и "subject".
	Options map[string]string `json:"options,omitempty" yaml:"options"`
}

// Option возвращает опцию канала и флаг её наличия.
func (c ChannelDefinition) Option(key string) (string, bool) {
	v, ok := c.Options[key]
	return v, ok
}

// LinkDefinition описывает именованную цель уведомления:
// шаблон сообщения, его параметры и каналы доставки.
//
// Определения неизменяемы после загрузки и кешируются на всё время жизни процесса.
type LinkDefinition struct {
	// Name совпадает с именем YAML файла без расширения.
	Name string `json:"name"`

	// MessageTemplate содержит плейсхолдеры вида {name}.
	MessageTemplate string `json:"message_template"`

	// Parameters в порядке объявления.
	Parameters []ParameterDefinition `json:"parameters"`

	// Channels в порядке объявления. Порядок определяет порядок отправки.
	Channels []ChannelDefinition `json:"channels"`
}

// Transports возвращает имена транспортов в порядке объявления каналов.
func (l *LinkDefinition) Transports() []string {
	names := make([]string, len(l.Channels))
	for i, ch := range l.Channels {
		names[i] = ch.Transport
	}
	return names
}
