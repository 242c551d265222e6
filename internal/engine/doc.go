// Package engine содержит ядро подготовки сообщений.
//
// Включает:
//   - params.go: разрешение параметров по определениям (обязательные, значения по умолчанию)
//   - template.go: подстановка плейсхолдеров {name} за один проход
//   - errors.go: ошибки NotFoundError и ValidationError
//
// Пакет не выполняет I/O и не знает о транспортах. Его используют
// dispatch (сообщение link) и orchestrator (параметры шагов workflow).
package engine
