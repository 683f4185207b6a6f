package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	QuotesTable        string `env:"QUOTES_TABLE" envDefault:"quotes"`
	CustomersTable     string `env:"CUSTOMERS_TABLE" envDefault:"customers"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM" envDefault:"angebote@umzug.example"`

	MailRetryAttempts uint          `env:"MAIL_RETRY_ATTEMPTS" envDefault:"3"`
	MailRetryDelay    time.Duration `env:"MAIL_RETRY_DELAY" envDefault:"2s"`

	CustomerCacheTTL time.Duration `env:"CUSTOMER_CACHE_TTL" envDefault:"5m"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// MailConfigured reports whether SMTP transport can actually send. Without
// it the mailer degrades to a logged no-op so quoting is never blocked.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != ""
}
