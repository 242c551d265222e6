package repo

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/shaiso/Linker/internal/domain"
)

// Значения по умолчанию для полей параметра в YAML.
const (
	defaultParamRequired = true
	defaultParamType     = "string"
)

// yamlParameter: поля одного параметра. Указатели отличают
// отсутствующее поле от нулевого значения.
type yamlParameter struct {
	Required *bool   `yaml:"required"`
	Type     *string `yaml:"type"`
	Default  *string `yaml:"default"`
}

// decodeParameters разбирает mapping "имя: настройки" с сохранением порядка ключей.
func decodeParameters(n *yaml.Node, owner string) ([]domain.ParameterDefinition, error) {
	if isAbsent(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: parameters of %s must be a mapping", ErrInvalidDefinition, owner)
	}

	params := make([]domain.ParameterDefinition, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		var raw yamlParameter
		if err := value.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: parameter %q of %s: %v", ErrInvalidDefinition, key.Value, owner, err)
		}

		p := domain.ParameterDefinition{
			Name:     key.Value,
			Required: defaultParamRequired,
			Type:     defaultParamType,
			Default:  raw.Default,
		}
		if raw.Required != nil {
			p.Required = *raw.Required
		}
		if raw.Type != nil {
			p.Type = *raw.Type
		}

		params = append(params, p)
	}

	return params, nil
}
