// Package cli реализует инструмент командной строки Linker.
//
// # Обзор
//
// CLI: клиентская утилита для взаимодействия с Linker API.
// Работает через HTTP и не импортирует внутренние пакеты сервера.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для Linker API. Инкапсулирует запросы, разбор ответов
// и преобразование ответов с ошибкой в *APIError.
//
//	client := cli.NewClient("http://localhost:8080")
//	resp, err := client.Notify(ctx, "server-alert", map[string]string{"server": "web1"})
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - таблицы (go-pretty) по умолчанию
//   - JSON с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) в stderr.
// Это позволяет использовать pipe: linker link list --json | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - notify LINK --param k=v
//   - link: list
//   - workflow: list, run
//
// Каждая группа создаётся через фабричную функцию (NewNotifyCmd и т.д.),
// принимающую clientFn и outputFn: замыкания для ленивого создания
// Client и Output после парсинга PersistentFlags.
package cli
