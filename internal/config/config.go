package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed by reference into each component
// constructor. There are no ambient globals.
type Config struct {
	Environment string
	Port        string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	JWT       JWTConfig
	Google    GoogleConfig
	SMTP      SMTPConfig
	Uploads   UploadsConfig
	Generator GeneratorConfig
	Kafka     KafkaConfig
}

type JWTConfig struct {
	Secret string
	Issuer string
	// TokenTTL applies to password logins and registration (30 days);
	// Google logins get the shorter GoogleTokenTTL (1 day).
	TokenTTL       time.Duration
	GoogleTokenTTL time.Duration
}

type GoogleConfig struct {
	ClientID string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type UploadsConfig struct {
	// Dir is where badge files land on disk; BaseURL is the static prefix
	// they are served under.
	Dir     string
	BaseURL string
	MaxSize int64
}

type GeneratorConfig struct {
	// Provider selects "template" (default) or "openai". The external
	// provider always falls back to templates on failure.
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", ""),
			Issuer:         getEnv("JWT_ISSUER", "portfolio-service"),
			TokenTTL:       30 * 24 * time.Hour,
			GoogleTokenTTL: 24 * time.Hour,
		},
		Google: GoogleConfig{
			ClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("EMAIL_FROM", "no-reply@projectpilot.dev"),
		},
		Uploads: UploadsConfig{
			Dir:     getEnv("UPLOADS_DIR", "uploads/badges"),
			BaseURL: getEnv("UPLOADS_BASE_URL", "/uploads/badges"),
			MaxSize: int64(getEnvInt("UPLOADS_MAX_SIZE", 5*1024*1024)),
		},
		Generator: GeneratorConfig{
			Provider: getEnv("GENERATOR_PROVIDER", "template"),
			APIKey:   getEnv("GENERATOR_API_KEY", ""),
			BaseURL:  getEnv("GENERATOR_BASE_URL", ""),
			Model:    getEnv("GENERATOR_MODEL", "gpt-4o-mini"),
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "portfolio.notifications"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWT.Secret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}

	return cfg, nil
}

// IsProduction controls, among other things, whether raw OTP codes are
// echoed back in OTP-request responses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if part := s[start:i]; part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}
