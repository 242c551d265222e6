package engine

import (
	"reflect"
	"testing"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		expected string
	}{
		{
			name:     "single placeholder",
			template: "Hello, {name}!",
			params:   map[string]string{"name": "Linker"},
			expected: "Hello, Linker!",
		},
		{
			name:     "repeated placeholder",
			template: "{app} {app} {app}",
			params:   map[string]string{"app": "x"},
			expected: "x x x",
		},
		{
			name:     "unknown placeholder untouched",
			template: "[{status}] {server}: {missing}",
			params:   map[string]string{"status": "critical", "server": "web1"},
			expected: "[critical] web1: {missing}",
		},
		{
			name:     "value is not rescanned",
			template: "{a}{b}",
			params:   map[string]string{"a": "{b}", "b": "X"},
			expected: "{b}X",
		},
		{
			name:     "self reference is literal",
			template: "{a}",
			params:   map[string]string{"a": "{a}"},
			expected: "{a}",
		},
		{
			name:     "no placeholders",
			template: "Plain text",
			params:   map[string]string{"a": "b"},
			expected: "Plain text",
		},
		{
			name:     "nil params",
			template: "{a}",
			params:   nil,
			expected: "{a}",
		},
		{
			name:     "empty value",
			template: "x{a}y",
			params:   map[string]string{"a": ""},
			expected: "xy",
		},
		{
			name:     "special characters",
			template: "{server} - {status}",
			params:   map[string]string{"server": "web-01.prod (primary)", "status": "error & critical <alert>"},
			expected: "web-01.prod (primary) - error & critical <alert>",
		},
		{
			name:     "similar keys",
			template: "{a}{ab}{abc}",
			params:   map[string]string{"a": "1", "ab": "2", "abc": "3"},
			expected: "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Interpolate(tt.template, tt.params)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestInterpolateMap(t *testing.T) {
	resolved := map[string]string{
		"server":  "web-01.prod",
		"status":  "critical",
		"message": "CPU usage above 95%",
	}
	stepParams := map[string]string{
		"server":  "{server}",
		"status":  "{status}",
		"message": "[{status}] {message} on {server}",
		"static":  "no placeholders",
		"unknown": "{nope}",
	}

	result := InterpolateMap(stepParams, resolved)

	expected := map[string]string{
		"server":  "web-01.prod",
		"status":  "critical",
		"message": "[critical] CPU usage above 95% on web-01.prod",
		"static":  "no placeholders",
		"unknown": "{nope}",
	}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}

	// исходная карта не изменяется
	if stepParams["server"] != "{server}" {
		t.Error("input map should not be mutated")
	}
}

func TestInterpolateMap_Empty(t *testing.T) {
	result := InterpolateMap(nil, map[string]string{"a": "b"})
	if result == nil {
		t.Fatal("result should not be nil")
	}
	if len(result) != 0 {
		t.Errorf("expected empty map, got %v", result)
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		template string
		expected []string
	}{
		{"[{status}] {server}: {message}", []string{"status", "server", "message"}},
		{"{a}{a}{b}", []string{"a", "b"}},
		{"no placeholders", nil},
		{"{unclosed", nil},
		{"{with space} {ok}", []string{"ok"}},
		{"{{nested}}", []string{"nested"}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			result := Placeholders(tt.template)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}
