package orchestrator

import (
	"errors"
	"fmt"
)

// ErrStepPanicked: шаг завершился panic, перехваченной на границе шага.
var ErrStepPanicked = errors.New("step panicked")

// panicError превращает значение recover() в ошибку.
func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("%w: %w", ErrStepPanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrStepPanicked, v)
}
