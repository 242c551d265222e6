package repo

import (
	"errors"

	"github.com/shaiso/Linker/internal/engine"
)

// Общие ошибки репозиториев.
var (
	// ErrNotFound: определение не найдено. Совпадает с engine.ErrNotFound,
	// поэтому errors.Is работает с *engine.NotFoundError.
	ErrNotFound = engine.ErrNotFound

	// ErrInvalidDefinition: YAML файл определения некорректен.
	ErrInvalidDefinition = errors.New("invalid definition")
)
