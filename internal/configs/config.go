package configs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type RESTConfig struct {
	Port               string   `env:"PORT" envDefault:"8080"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

type StorageConfig struct {
	Driver       string `env:"STORAGE_DRIVER" envDefault:"memory"`
	SeedMockData bool   `env:"SEED_MOCK_DATA" envDefault:"true"`
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL"`
}

type RabbitMQConfig struct {
	Enabled  bool   `env:"RABBITMQ_ENABLED" envDefault:"false"`
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"property_events"`
}

type StdoutLogConfig struct {
	Level string `env:"STDOUT_LOG_LEVEL" envDefault:"debug"`
}

type FluentBitConfig struct {
	Enabled bool   `env:"FLUENTBIT_ENABLED" envDefault:"false"`
	Host    string `env:"FLUENTBIT_HOST"`
	Port    int    `env:"FLUENTBIT_PORT" envDefault:"24224"`
	Level   string `env:"FLUENTBIT_LOG_LEVEL" envDefault:"info"`
}

// ListingConfig - параметры каталога и формы подачи объявлений
type ListingConfig struct {
	PageSize      int           `env:"PAGE_SIZE" envDefault:"12"`
	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"5s"`
	DraftTTL      time.Duration `env:"DRAFT_TTL" envDefault:"24h"` // брошенные черновики удаляются
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string `env:"APP_NAME" envDefault:"listing-service"`
	Rest         RESTConfig
	Storage      StorageConfig
	Database     DatabaseConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
	Listing      ListingConfig
}

// LoadConfig читает .env (если он есть) и переменные окружения.
// Отсутствие .env не ошибка: в контейнере переменные приходят из окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: could not load .env file (path: %v): %v. Using process environment.", envPath, err)
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *AppConfig) validate() error {
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for STORAGE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q (expected memory or postgres)", cfg.Storage.Driver)
	}

	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.URL == "" {
		return fmt.Errorf("RABBITMQ_URL environment variable is required when RABBITMQ_ENABLED is true")
	}

	if cfg.FluentBit.Enabled && cfg.FluentBit.Host == "" {
		log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
		cfg.FluentBit.Enabled = false
	}

	if cfg.Listing.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.Listing.PageSize)
	}
	if cfg.Listing.SubmitTimeout <= 0 {
		return fmt.Errorf("SUBMIT_TIMEOUT must be positive, got %s", cfg.Listing.SubmitTimeout)
	}
	if cfg.Listing.DraftTTL <= 0 {
		return fmt.Errorf("DRAFT_TTL must be positive, got %s", cfg.Listing.DraftTTL)
	}
	return nil
}
