package transport

// Kind: вариант транспорта, определяемый по имени канала.
type Kind int

const (
	KindUnsupported Kind = iota
	KindChat
	KindSMS
	KindEmail
	KindWebhook
)

// Имена транспортов.
const (
	NameSlack        = "slack"
	NameTelegram     = "telegram"
	NameDiscord      = "discord"
	NameSMS          = "sms"
	NameEmail        = "email"
	NameSlackWebhook = "slack-webhook"
)

// Опции каналов.
const (
	OptionTo      = "to"
	OptionSubject = "subject"
)

var kinds = map[string]Kind{
	NameSlack:        KindChat,
	NameTelegram:     KindChat,
	NameDiscord:      KindChat,
	NameSMS:          KindSMS,
	NameEmail:        KindEmail,
	NameSlackWebhook: KindWebhook,
}

// Classify возвращает вариант транспорта по имени.
func Classify(name string) Kind {
	if k, ok := kinds[name]; ok {
		return k
	}
	return KindUnsupported
}

// String возвращает имя варианта для логов и метрик.
func (k Kind) String() string {
	switch k {
	case KindChat:
		return "chat"
	case KindSMS:
		return "sms"
	case KindEmail:
		return "email"
	case KindWebhook:
		return "webhook"
	default:
		return "unsupported"
	}
}
