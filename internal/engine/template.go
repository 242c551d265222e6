package engine

import (
	"sort"
	"strings"
)

// Interpolate подставляет значения params вместо плейсхолдеров {key}.
//
// Подстановка выполняется за один проход: подставленное значение
// повторно не сканируется, поэтому значение "{other}" попадёт в результат
// буквально. Плейсхолдеры, для которых нет ключа в params, остаются как есть.
//
//	Interpolate("{a}{b}", map[string]string{"a": "{b}", "b": "X"}) // "{b}X"
func Interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return newReplacer(params).Replace(tmpl)
}

// InterpolateMap применяет Interpolate к каждому значению values.
// Используется для параметров шагов workflow.
func InterpolateMap(values map[string]string, params map[string]string) map[string]string {
	result := make(map[string]string, len(values))
	if len(values) == 0 {
		return result
	}

	r := newReplacer(params)
	for key, val := range values {
		result[key] = r.Replace(val)
	}
	return result
}

// newReplacer строит strings.Replacer для всех ключей params.
// strings.Replacer заменяет совпадения слева направо без перекрытий
// и не сканирует уже подставленный текст.
func newReplacer(params map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", params[k])
	}
	return strings.NewReplacer(pairs...)
}

// Placeholders возвращает имена плейсхолдеров шаблона в порядке появления, без повторов.
func Placeholders(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)

	for {
		start := strings.IndexByte(tmpl, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(tmpl[start+1:], '}')
		if end < 0 {
			break
		}
		name := tmpl[start+1 : start+1+end]
		// "{{" и "{a b}" плейсхолдерами не считаются
		if name != "" && !strings.ContainsAny(name, "{ \t\n") && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		tmpl = tmpl[start+1:]
	}

	return names
}
