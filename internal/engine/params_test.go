package engine

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shaiso/Linker/internal/domain"
)

func strPtr(s string) *string { return &s }

func serverAlertParams() []domain.ParameterDefinition {
	return []domain.ParameterDefinition{
		{Name: "server", Required: true, Type: "string"},
		{Name: "status", Required: true, Type: "string"},
		{Name: "message", Required: false, Type: "string", Default: strPtr("No details provided")},
	}
}

func TestResolveParameters(t *testing.T) {
	tests := []struct {
		name     string
		defs     []domain.ParameterDefinition
		input    map[string]string
		expected map[string]string
	}{
		{
			name:     "all provided",
			defs:     serverAlertParams(),
			input:    map[string]string{"server": "web1", "status": "down", "message": "disk full"},
			expected: map[string]string{"server": "web1", "status": "down", "message": "disk full"},
		},
		{
			name:     "default applied",
			defs:     serverAlertParams(),
			input:    map[string]string{"server": "web1", "status": "down"},
			expected: map[string]string{"server": "web1", "status": "down", "message": "No details provided"},
		},
		{
			name: "optional without default omitted",
			defs: []domain.ParameterDefinition{
				{Name: "app", Required: true},
				{Name: "note", Required: false},
			},
			input:    map[string]string{"app": "linker-api"},
			expected: map[string]string{"app": "linker-api"},
		},
		{
			name:     "unknown keys dropped",
			defs:     serverAlertParams(),
			input:    map[string]string{"server": "web1", "status": "down", "extra": "x"},
			expected: map[string]string{"server": "web1", "status": "down", "message": "No details provided"},
		},
		{
			name:     "empty string counts as provided",
			defs:     serverAlertParams(),
			input:    map[string]string{"server": "", "status": "", "message": ""},
			expected: map[string]string{"server": "", "status": "", "message": ""},
		},
		{
			name: "type is not coerced",
			defs: []domain.ParameterDefinition{
				{Name: "count", Required: true, Type: "integer"},
			},
			input:    map[string]string{"count": "not-a-number"},
			expected: map[string]string{"count": "not-a-number"},
		},
		{
			name:     "no definitions",
			defs:     nil,
			input:    map[string]string{"a": "b"},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolveParameters(tt.defs, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(resolved, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, resolved)
			}
		})
	}
}

func TestResolveParameters_ReportsEveryMissing(t *testing.T) {
	defs := []domain.ParameterDefinition{
		{Name: "app", Required: true},
		{Name: "version", Required: true},
		{Name: "environment", Required: true},
		{Name: "deployer", Required: false, Default: strPtr("unknown")},
	}

	_, err := ResolveParameters(defs, map[string]string{"version": "2.4.0"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if !errors.Is(err, ErrInvalidParameters) {
		t.Error("ValidationError should unwrap to ErrInvalidParameters")
	}

	expected := []string{
		`Missing required parameter "app".`,
		`Missing required parameter "environment".`,
	}
	if !reflect.DeepEqual(vErr.Errors, expected) {
		t.Errorf("expected %v, got %v", expected, vErr.Errors)
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "Invalid parameters: ") {
		t.Errorf("unexpected message: %s", msg)
	}
	if !strings.Contains(msg, `"app"`) || !strings.Contains(msg, `"environment"`) {
		t.Errorf("message should list every missing parameter: %s", msg)
	}
}

func TestResolveParameters_SingleMissingDoesNotMentionProvided(t *testing.T) {
	_, err := ResolveParameters(serverAlertParams(), map[string]string{"server": "web1"})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(vErr.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", vErr.Errors)
	}
	if !strings.Contains(vErr.Errors[0], "status") {
		t.Errorf("error should name status: %s", vErr.Errors[0])
	}
	if strings.Contains(vErr.Errors[0], "server") {
		t.Errorf("error should not mention server: %s", vErr.Errors[0])
	}
}

func TestResolveParameters_Deterministic(t *testing.T) {
	input := map[string]string{"server": "web-01.prod", "status": "critical"}

	first, err := ResolveParameters(serverAlertParams(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ResolveParameters(serverAlertParams(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("resolution is not deterministic: %v vs %v", first, again)
		}
	}

	// входные данные не изменяются
	if len(input) != 2 {
		t.Errorf("input should not be mutated, got %v", input)
	}
}
