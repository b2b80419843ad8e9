package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port       int  `env:"PORT" envDefault:"9090"`
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`

	Secret string `env:"SECRET,required"`
	// Registering with this password grants the admin role. Empty
	// disables the promotion.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	AwsRegion                     string  `env:"AWS_REGION"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE"`
	PasswordResetBaseURL          url.URL `env:"PASSWORD_RESET_BASE_URL"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
