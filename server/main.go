package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/crisispilot/crisispilot/server/analysis"
	"github.com/crisispilot/crisispilot/server/chat"
	"github.com/crisispilot/crisispilot/server/composer"
	"github.com/crisispilot/crisispilot/server/genai"
	"github.com/crisispilot/crisispilot/server/news"
	"github.com/crisispilot/crisispilot/server/notifier"
	"github.com/crisispilot/crisispilot/server/pipeline"
)

func main() {
	cfg, err := loadConfiguration()
	if err != nil {
		// Logger isn't up yet; stderr is all we have
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogMode)
	if err != nil {
		os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	a := buildApp(cfg, log)

	if !notifier.ValidateWebhookURL(cfg.DiscordWebhookURL) {
		log.Warnw("Discord webhook missing or malformed, alert delivery is disabled")
	}

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           a.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("Server starting", "addr", cfg.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
}

// newLogger builds the process logger for the configured mode.
func newLogger(mode string) (*zap.Logger, error) {
	if mode == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// buildApp wires every component from the loaded configuration.
func buildApp(cfg configuration, log *zap.SugaredLogger) *app {
	model := genai.NewGroqModel(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.ModelID)

	searcher := news.NewSearcher(
		news.NewSerperClient(cfg.SerperURL, cfg.SerperAPIKey),
		news.NewDuckDuckGoClient(cfg.DuckDuckGoURL),
		log.Named("news"),
	)
	analyzer := analysis.NewAnalyzer(model, log.Named("analysis"))
	messageComposer := composer.New(model, log.Named("composer"))
	alertNotifier := notifier.New(cfg.DiscordWebhookURL, log.Named("notifier"))
	orchestrator := pipeline.New(searcher, analyzer, messageComposer, alertNotifier, log.Named("pipeline"))
	chatAgent := chat.NewAgent(model, log.Named("chat"))

	return &app{
		cfg:          cfg,
		logger:       log,
		searcher:     searcher,
		orchestrator: orchestrator,
		composer:     messageComposer,
		notifier:     alertNotifier,
		chatAgent:    chatAgent,
	}
}
