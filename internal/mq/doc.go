// Package mq публикует события Linker в RabbitMQ.
//
// Структура:
//   - connection.go: соединение с RabbitMQ (reconnect, graceful shutdown)
//   - topology.go: объявление exchange, очереди аудита и привязок
//   - publisher.go: публикация событий
//
// Типы сообщений:
//   - link.dispatched: link отправлен (успешно или с ошибкой)
//   - workflow.completed: workflow выполнен
//
// Публикация необязательна: если RabbitMQ не настроен, Publisher равен nil
// и все его методы ничего не делают.
package mq
