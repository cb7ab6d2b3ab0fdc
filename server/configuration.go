package main

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// configuration captures the process's external configuration. It is loaded
// once at startup, validated, and passed into component constructors; no
// stage performs ambient environment lookups.
type configuration struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// LogMode selects the zap encoder ("development" or "production").
	LogMode string `env:"LOG_MODE" envDefault:"development"`

	// GroqAPIKey is the text-generation credential. Required: without it
	// every analysis call fails and the pipeline cannot produce assessments.
	GroqAPIKey string `env:"GROQ_API_KEY"`

	// GroqBaseURL overrides the Groq endpoint (useful for testing).
	GroqBaseURL string `env:"GROQ_BASE_URL"`

	// ModelID overrides the default language model.
	ModelID string `env:"MODEL_ID"`

	// SerperAPIKey is the primary search credential. Optional: absence
	// routes retrieval through the credential-free fallback provider.
	SerperAPIKey string `env:"SERPER_API_KEY"`

	// SerperURL overrides the Serper endpoint (useful for testing).
	SerperURL string `env:"SERPER_URL"`

	// DuckDuckGoURL overrides the DuckDuckGo endpoint (useful for testing).
	DuckDuckGoURL string `env:"DUCKDUCKGO_URL"`

	// DiscordWebhookURL is the notification endpoint. Optional: absence
	// disables delivery, and delivery then always reports false.
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL"`

	// MaxNewsResults bounds how many articles one pipeline run retrieves.
	MaxNewsResults int `env:"MAX_NEWS_RESULTS" envDefault:"5"`
}

// loadConfiguration reads the optional .env file, parses the environment,
// and validates the result.
func loadConfiguration() (configuration, error) {
	// Missing .env is fine; real deployments configure the environment directly
	_ = godotenv.Load()

	var cfg configuration
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// validate checks the invariants the components rely on.
func (c configuration) validate() error {
	if c.GroqAPIKey == "" {
		return errors.New("GROQ_API_KEY is required")
	}
	if c.MaxNewsResults <= 0 {
		return errors.New("MAX_NEWS_RESULTS must be positive")
	}
	return nil
}
