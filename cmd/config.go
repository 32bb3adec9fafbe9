package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"laundry"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Empty RabbitMQURL logs notifications instead of publishing them.
	RabbitMQURL      string `env:"RABBITMQ_URL"`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE" envDefault:"laundry.notifications"`

	// Timezone is the zone shift windows are written in.
	Timezone          string          `env:"TIMEZONE" envDefault:"UTC"`
	LaundryRatePerKg  decimal.Decimal `env:"LAUNDRY_RATE_PER_KG" envDefault:"5000"`
	NotificationQueue int             `env:"NOTIFICATION_QUEUE_SIZE" envDefault:"256"`

	ReminderSchedule  string        `env:"REMINDER_SCHEDULE" envDefault:"* * * * *"`
	ReminderThreshold time.Duration `env:"REMINDER_THRESHOLD" envDefault:"30m"`
}

// LoadConfig reads .env when present and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.NotificationQueue < 1 {
		return Config{}, fmt.Errorf("NOTIFICATION_QUEUE_SIZE must be positive, got %d", cfg.NotificationQueue)
	}
	if !cfg.LaundryRatePerKg.IsPositive() {
		return Config{}, fmt.Errorf("LAUNDRY_RATE_PER_KG must be positive, got %s", cfg.LaundryRatePerKg)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
