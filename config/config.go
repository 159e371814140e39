package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Interpreter
	Ollama      OllamaConfig
	Interpreter InterpreterConfig

	// Workspace
	Storage        StorageConfig
	GoogleCalendar GoogleCalendarConfig

	// Deliveries
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int // 0 disables rate limiting
}

type OllamaConfig struct {
	Enabled     bool
	BaseURL     string
	Model       string
	Timeout     time.Duration
	HealthTTL   time.Duration
	MaxFailures uint32
	OpenTimeout time.Duration
}

type InterpreterConfig struct {
	Timezone     string
	HistorySize  int
	HistoryUsers int
}

type StorageConfig struct {
	SQLitePath string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type TelegramConfig struct {
	BotToken     string
	WebhookURL   string
	TunnelAPIURL string // ngrok local API, used when WebhookURL is empty
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// Every key can be overridden from the environment, e.g. OLLAMA_MODEL.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Interpreter
	cfg.Ollama.Enabled = v.GetBool("ollama.enabled")
	cfg.Ollama.BaseURL = v.GetString("ollama.base_url")
	cfg.Ollama.Model = v.GetString("ollama.model")
	cfg.Ollama.Timeout = v.GetDuration("ollama.timeout")
	cfg.Ollama.HealthTTL = v.GetDuration("ollama.health_ttl")
	cfg.Ollama.MaxFailures = v.GetUint32("ollama.breaker.max_failures")
	cfg.Ollama.OpenTimeout = v.GetDuration("ollama.breaker.open_timeout")

	cfg.Interpreter.Timezone = v.GetString("interpreter.timezone")
	cfg.Interpreter.HistorySize = v.GetInt("interpreter.history_size")
	cfg.Interpreter.HistoryUsers = v.GetInt("interpreter.history_users")

	// Workspace
	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	// Deliveries
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.TunnelAPIURL = v.GetString("telegram.tunnel_api_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	v.SetDefault("ollama.enabled", true)
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("ollama.timeout", "30s")
	v.SetDefault("ollama.health_ttl", "30s")
	v.SetDefault("ollama.breaker.max_failures", 3)
	v.SetDefault("ollama.breaker.open_timeout", "30s")

	v.SetDefault("interpreter.timezone", "Europe/Paris")
	v.SetDefault("interpreter.history_size", 10)
	v.SetDefault("interpreter.history_users", 10000)

	v.SetDefault("storage.sqlite_path", "data/assistant.db")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}
	if _, err := time.LoadLocation(c.Interpreter.Timezone); err != nil {
		return fmt.Errorf("interpreter.timezone %q: %w", c.Interpreter.Timezone, err)
	}
	if c.Interpreter.HistorySize <= 0 {
		return fmt.Errorf("interpreter.history_size must be positive, got %d", c.Interpreter.HistorySize)
	}
	if c.Interpreter.HistoryUsers <= 0 {
		return fmt.Errorf("interpreter.history_users must be positive, got %d", c.Interpreter.HistoryUsers)
	}
	if c.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required")
	}
	if c.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative, got %d", c.RateLimit.PerMin)
	}
	return nil
}
