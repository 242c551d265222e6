// Package orchestrator выполняет workflow: упорядоченную последовательность
// шагов, каждый из которых отправляет link.
//
// Выполнение проходит фазы:
//
//	ParametersPending → ParametersResolved → StepsExecuting → Completed
//
// Параметры workflow разрешаются один раз. Затем для каждого шага параметры
// шага интерполируются разрешёнными значениями и передаются в Dispatcher.
// Ошибка (или panic) одного шага записывается в его StepResult и не
// останавливает остальные шаги.
package orchestrator
