package cli

import (
	"fmt"
	"strings"
)

// parseParams разбирает значения флага --param вида key=value.
// Значение может содержать '='; повторный ключ перекрывает предыдущий.
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}
