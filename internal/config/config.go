package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the application. Values come from
// the environment; a .env file is loaded first when present.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        string `env:"PORT" envDefault:"3000"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	S3Endpoint        string `env:"S3_ENDPOINT,required"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID,required"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY,required"`
	S3Bucket          string `env:"S3_BUCKET,required"`
	S3Region          string `env:"S3_REGION" envDefault:"us-east-1"`
	S3UseSSL          bool   `env:"S3_USE_SSL"`

	// Optional: download events are published only when a URL is set.
	RabbitMQURL   string `env:"RABBITMQ_URL"`
	RabbitMQQueue string `env:"RABBITMQ_QUEUE" envDefault:"game_download_events"`

	SeedDatabase bool `env:"SEED_DATABASE" envDefault:"true"`
}

func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment configuration: %w", err)
	}

	return &cfg, nil
}
