// Linker API: HTTP сервер, отправляющий link и выполняющий workflow.
//
// Использование:
//
//	linker-api [-config linker.yaml]
//
// Конфигурация читается из linker.yaml и переменных окружения LINKER_*.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Linker/internal/api"
	"github.com/shaiso/Linker/internal/config"
	"github.com/shaiso/Linker/internal/dispatch"
	"github.com/shaiso/Linker/internal/mq"
	"github.com/shaiso/Linker/internal/orchestrator"
	"github.com/shaiso/Linker/internal/repo"
	"github.com/shaiso/Linker/internal/sender"
	"github.com/shaiso/Linker/internal/telemetry"
	"github.com/shaiso/Linker/internal/transport"
)

var startTime = time.Now()

func main() {
	configPath := flag.String("config", "", "Path to linker.yaml")
	flag.Parse()

	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting linker-api")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Определения link и workflow
	links := repo.NewLinkRepo(cfg.Definitions.LinksDir, logger)
	workflows := repo.NewWorkflowRepo(cfg.Definitions.WorkflowsDir, logger)

	// Публикация событий (необязательна)
	publisher, closeEvents := setupEvents(cfg, logger)
	defer closeEvents()

	// Транспорты
	timeout := cfg.WebhookTimeout()
	resolver := transport.NewResolver(transport.Senders{
		Chat: sender.NewChatClient(sender.ChatOptions{
			SlackURL:       cfg.Chat.SlackURL,
			DiscordURL:     cfg.Chat.DiscordURL,
			TelegramToken:  cfg.Chat.TelegramToken,
			TelegramChatID: cfg.Chat.TelegramChatID,
			Timeout:        timeout,
		}),
		SMS: sender.NewTwilioClient(sender.TwilioOptions{
			AccountSID: cfg.SMS.AccountSID,
			AuthToken:  cfg.SMS.AuthToken,
			From:       cfg.SMS.From,
			BaseURL:    cfg.SMS.BaseURL,
			Timeout:    timeout,
		}),
		Mail: sender.NewSMTPMailer(sender.SMTPOptions{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		}),
		Webhook:    sender.NewWebhookClient(timeout),
		WebhookURL: cfg.Webhook.URL,
	})

	dispatcher := dispatch.New(dispatch.Config{
		Links:    links,
		Resolver: resolver,
		Events:   publisher,
		Logger:   logger,
	})

	orch := orchestrator.New(orchestrator.Config{
		Workflows:  workflows,
		Dispatcher: dispatcher,
		Events:     publisher,
		Logger:     logger,
	})

	// Создаём API handler
	handler := api.NewHandler(api.Config{
		Notifier:  dispatcher,
		Runner:    orch,
		Links:     links,
		Workflows: workflows,
		Logger:    logger,
	})

	mux := http.NewServeMux()

	// Health и metrics
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	addr := cfg.Addr()

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}

// setupEvents подключается к RabbitMQ, если задан events.rabbitmq_url.
// Без RabbitMQ возвращает nil Publisher: его методы ничего не делают.
func setupEvents(cfg *config.Config, logger *slog.Logger) (*mq.Publisher, func()) {
	noop := func() {}

	if cfg.Events.RabbitMQURL == "" {
		logger.Info("event publishing disabled")
		return nil, noop
	}

	conn, err := mq.NewConnection(cfg.Events.RabbitMQURL, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, event publishing disabled", "error", err)
		return nil, noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mq.SetupTopology(ctx, conn); err != nil {
		logger.Warn("failed to declare rabbitmq topology, event publishing disabled", "error", err)
		conn.Close()
		return nil, noop
	}

	logger.Info("connected to RabbitMQ")

	return mq.NewPublisher(conn, logger), func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close rabbitmq connection", "error", err)
		}
	}
}
