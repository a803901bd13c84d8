package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"false"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Session identity
	UserID     string `env:"USER_ID"`
	UserName   string `env:"USER_NAME"`
	UserAvatar string `env:"USER_AVATAR"`

	// Sync Config
	ProbeInterval      time.Duration `env:"PROBE_INTERVAL" envDefault:"3s"`
	ResubscribeDelay   time.Duration `env:"RESUBSCRIBE_DELAY" envDefault:"5s"`
	MutationLedgerSize int           `env:"MUTATION_LEDGER_SIZE" envDefault:"256"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Лимит на запросы записи, формат limiter: "30-M", "5-S"; пусто - без лимита
	WriteRateLimit string `env:"WRITE_RATE_LIMIT" envDefault:"30-M"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig(envFiles ...string) (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MigrateOnStart:     getEnvAsBool("MIGRATE_ON_START", false),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		UserID:             os.Getenv("USER_ID"),
		UserName:           os.Getenv("USER_NAME"),
		UserAvatar:         os.Getenv("USER_AVATAR"),
		ProbeInterval:      getEnvAsDuration("PROBE_INTERVAL", 3*time.Second),
		ResubscribeDelay:   getEnvAsDuration("RESUBSCRIBE_DELAY", 5*time.Second),
		MutationLedgerSize: getEnvAsInt("MUTATION_LEDGER_SIZE", 256),
		WriteRateLimit:     getEnv("WRITE_RATE_LIMIT", "30-M"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.UserID == "" {
		return fmt.Errorf("USER_ID environment variable is required")
	}
	if c.UserName == "" {
		c.UserName = c.UserID
	}
	if c.ProbeInterval <= 0 {
		return fmt.Errorf("PROBE_INTERVAL must be positive, got %s", c.ProbeInterval)
	}
	if c.MutationLedgerSize <= 0 {
		c.MutationLedgerSize = 256
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
