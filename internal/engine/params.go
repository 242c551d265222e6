package engine

import "github.com/shaiso/Linker/internal/domain"

// ResolveParameters проверяет и разрешает входные параметры по определениям.
//
// Для каждого определения по порядку:
//   - значение есть во входных данных (даже пустая строка): берём его
//   - параметр необязательный и есть default: берём default
//   - параметр необязательный без default: ключ не попадает в результат
//   - параметр обязательный и отсутствует: записываем ошибку
//
// Ошибки собираются по всем определениям и возвращаются вместе как *ValidationError.
// Ключи, которых нет в определениях, отбрасываются. Тип параметра не проверяется.
func ResolveParameters(defs []domain.ParameterDefinition, input map[string]string) (map[string]string, error) {
	resolved := make(map[string]string, len(defs))
	var errs []string

	for _, def := range defs {
		if v, ok := input[def.Name]; ok {
			resolved[def.Name] = v
			continue
		}

		switch {
		case !def.Required && def.HasDefault():
			resolved[def.Name] = *def.Default
		case def.Required:
			errs = append(errs, missingParameter(def.Name))
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return resolved, nil
}
