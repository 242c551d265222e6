// Package sender содержит клиенты внешних сервисов доставки:
// чаты (Slack, Discord, Telegram), SMS через Twilio, почту через SMTP
// и произвольный JSON webhook.
//
// Клиенты реализуют интерфейсы пакета transport и ничего не знают
// о link, шаблонах и параметрах.
package sender
