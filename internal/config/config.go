package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported mail providers
const (
	MailProviderSMTP    = "smtp"
	MailProviderMailgun = "mailgun"
)

// Config holds all process-startup configuration.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Reset    ResetConfig
	Mail     MailConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Host     string `envconfig:"APP_HOST" default:"localhost"`
	Port     string `envconfig:"APP_PORT" default:"8080"`
	LogLevel string `envconfig:"APP_LOG_LEVEL" default:"info"`
}

// Addr returns host:port the HTTP server listens on.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

type PostgresConfig struct {
	Host         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User         string `envconfig:"POSTGRES_USER" default:"user"`
	Password     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	DB           string `envconfig:"POSTGRES_DB" default:"planets"`
	SSLMode      string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	MaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`
}

// DSN builds the pgx connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

type RedisConfig struct {
	Host         string `envconfig:"REDIS_HOST" default:"localhost"`
	Port         int    `envconfig:"REDIS_PORT" default:"6379"`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	Password     string `envconfig:"REDIS_PASSWORD"`
	PoolSize     int    `envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int    `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
}

// Addr returns host:port of the Redis server.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	SecretKey string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	Exp       time.Duration `envconfig:"JWT_EXP" default:"1h"`
}

type ResetConfig struct {
	TokenTTL time.Duration `envconfig:"RESET_TOKEN_TTL" default:"15m"`
}

type MailConfig struct {
	Provider      string `envconfig:"MAIL_PROVIDER" default:"smtp"`
	Server        string `envconfig:"MAIL_SERVER" default:"smtp.mailtrap.io"`
	Port          int    `envconfig:"MAIL_PORT" default:"2525"`
	Username      string `envconfig:"MAIL_USERNAME"`
	Password      string `envconfig:"MAIL_PASSWORD"`
	Sender        string `envconfig:"MAIL_SENDER" default:"admin@planetary-api.com"`
	MailgunDomain string `envconfig:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `envconfig:"MAILGUN_API_KEY"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"planetary.users"`
}

// Load reads the optional .env file at path and parses the environment.
// Variables already present in the environment take precedence over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Mail.Provider = strings.ToLower(strings.TrimSpace(c.Mail.Provider))
	switch c.Mail.Provider {
	case MailProviderSMTP:
	case MailProviderMailgun:
		if c.Mail.MailgunDomain == "" || c.Mail.MailgunAPIKey == "" {
			return fmt.Errorf("mailgun provider requires MAILGUN_DOMAIN and MAILGUN_API_KEY")
		}
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
	}
	if c.JWT.Exp <= 0 {
		return fmt.Errorf("JWT_EXP must be positive")
	}
	if c.Reset.TokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be positive")
	}
	return nil
}
