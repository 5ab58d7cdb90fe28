package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures all environment-driven settings so main stays lean.
type Config struct {
	Addr          string `env:"COURTCAL_ADDR" envDefault:":8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	JWTSigningKey string `env:"JWT_SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	JWTIssuer     string `env:"JWT_ISSUER" envDefault:"courtcal"`
	JWTAudience   string `env:"JWT_AUDIENCE" envDefault:"courtcal-api"`

	// DocumentRoot is the directory court-report PDFs are served from.
	DocumentRoot string `env:"DOCUMENT_ROOT" envDefault:"./documents"`
	// Building scopes registry queries to one courthouse.
	Building string `env:"COURT_BUILDING" envDefault:"main"`

	Redis RedisConfig
	AI    AIConfig
	Audit AuditConfig
}

// RedisConfig configures the optional token revocation list. Empty URL means
// revocation checks are disabled.
type RedisConfig struct {
	URL          string        `env:"REDIS_URL"`
	PoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT" envDefault:"3s"`
}

// AIConfig configures the extraction boundary. An empty APIKey means the
// service refuses extraction requests with service_unavailable.
type AIConfig struct {
	APIKey          string        `env:"OPENAI_API_KEY"`
	BaseURL         string        `env:"AI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model           string        `env:"AI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature     float32       `env:"AI_TEMPERATURE" envDefault:"0.1"`
	MaxOutputTokens int           `env:"AI_MAX_OUTPUT_TOKENS" envDefault:"8192"`
	Timeout         time.Duration `env:"AI_TIMEOUT" envDefault:"90s"`
}

// AuditConfig configures the audit sink. Brokers are optional; when set, audit
// records are mirrored onto the Kafka topic in addition to the database.
type AuditConfig struct {
	Brokers []string `env:"AUDIT_KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"AUDIT_KAFKA_TOPIC" envDefault:"courtcal.extraction.audit"`
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
