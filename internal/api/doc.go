// Package api содержит HTTP API сервер.
//
// Структура:
//   - handler.go          : Handler с DI (dispatcher, orchestrator, каталоги, logger)
//   - routes.go           : регистрация маршрутов
//   - middleware.go       : middleware (request id, logging, recovery)
//   - response.go         : JSON ответы и преобразование ошибок в статусы
//   - dto.go              : Data Transfer Objects
//   - notify_handler.go   : GET|POST /notify/{linkName}
//   - workflow_handler.go : POST /workflow/{workflowName}
//   - catalog_handler.go  : GET /links, GET /workflows
//
// Параметры link и workflow передаются в query string. Для workflow
// параметры также можно передать JSON объектом в теле запроса.
package api
