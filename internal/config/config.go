// Package config загружает конфигурацию Linker из файла linker.yaml
// и переменных окружения с префиксом LINKER_.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig: значение конфигурации вне допустимого диапазона.
var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "LINKER"

// Config holds the configuration for the application.
type Config struct {
	HTTP struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"http"`
	Definitions struct {
		LinksDir     string `mapstructure:"links_dir"`
		WorkflowsDir string `mapstructure:"workflows_dir"`
	} `mapstructure:"definitions"`
	Webhook struct {
		URL        string `mapstructure:"url"`
		TimeoutSec int    `mapstructure:"timeout_sec"`
	} `mapstructure:"webhook"`
	Chat struct {
		SlackURL       string `mapstructure:"slack_url"`
		DiscordURL     string `mapstructure:"discord_url"`
		TelegramToken  string `mapstructure:"telegram_token"`
		TelegramChatID string `mapstructure:"telegram_chat_id"`
	} `mapstructure:"chat"`
	SMS struct {
		AccountSID string `mapstructure:"account_sid"`
		AuthToken  string `mapstructure:"auth_token"`
		From       string `mapstructure:"from"`
		BaseURL    string `mapstructure:"base_url"`
	} `mapstructure:"sms"`
	Mail struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
	} `mapstructure:"mail"`
	Events struct {
		RabbitMQURL string `mapstructure:"rabbitmq_url"`
	} `mapstructure:"events"`
}

// defaults применяются до чтения файла и окружения.
var defaults = map[string]any{
	"http.port":                 8080,
	"definitions.links_dir":     "config/links",
	"definitions.workflows_dir": "config/workflows",
	"webhook.url":               "",
	"webhook.timeout_sec":       10,
	"chat.slack_url":            "",
	"chat.discord_url":          "",
	"chat.telegram_token":       "",
	"chat.telegram_chat_id":     "",
	"sms.account_sid":           "",
	"sms.auth_token":            "",
	"sms.from":                  "",
	"sms.base_url":              "https://api.twilio.com",
	"mail.host":                 "",
	"mail.port":                 587,
	"mail.username":             "",
	"mail.password":             "",
	"mail.from":                 "",
	"events.rabbitmq_url":       "",
}

// shortEnv: короткие имена переменных окружения в дополнение к LINKER_<SECTION>_<KEY>.
var shortEnv = map[string]string{
	"definitions.links_dir":     "LINKER_LINKS_DIR",
	"definitions.workflows_dir": "LINKER_WORKFLOWS_DIR",
	"events.rabbitmq_url":       "LINKER_RABBITMQ_URL",
}

// Load загружает конфигурацию.
//
// path указывает на конкретный файл. Если path пустой, ищется linker.yaml
// в текущем каталоге и в ./config; отсутствие файла не является ошибкой.
// Переменные окружения перекрывают значения из файла.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range shortEnv {
		full := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, full, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("linker")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Webhook.URL = strings.TrimSpace(cfg.Webhook.URL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет диапазоны значений.
func (c *Config) Validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("%w: http.port %d out of range", ErrInvalidConfig, c.HTTP.Port)
	}
	if c.Mail.Port < 1 || c.Mail.Port > 65535 {
		return fmt.Errorf("%w: mail.port %d out of range", ErrInvalidConfig, c.Mail.Port)
	}
	if c.Webhook.TimeoutSec < 0 {
		return fmt.Errorf("%w: webhook.timeout_sec must not be negative", ErrInvalidConfig)
	}
	if c.Definitions.LinksDir == "" || c.Definitions.WorkflowsDir == "" {
		return fmt.Errorf("%w: definitions directories must be set", ErrInvalidConfig)
	}
	return nil
}

// WebhookTimeout возвращает таймаут HTTP запросов к провайдерам.
func (c *Config) WebhookTimeout() time.Duration {
	return time.Duration(c.Webhook.TimeoutSec) * time.Second
}

// Addr возвращает адрес HTTP сервера.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}
