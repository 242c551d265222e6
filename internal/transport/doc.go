// Package transport классифицирует каналы link и отправляет через них сообщения.
//
// Имя транспорта из ChannelDefinition один раз превращается в вариант Kind
// (Chat, SMS, Email, Webhook) функцией Resolver.Resolve. Каждый вариант
// реализует Transport.Send и сам проверяет свои опции, поэтому проверка
// "unsupported transport" и строковые сравнения собраны в одном месте.
//
// Сами клиенты (HTTP, SMTP) живут в пакете sender и подключаются
// через интерфейсы ChatSender, SmsSender, MailSender и WebhookPoster.
package transport
