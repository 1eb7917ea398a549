package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	GinMode     string `env:"GIN_MODE"`
	FrontendURL string `env:"FRONTEND_URL"`

	AIProvider   string        `env:"AI_PROVIDER" envDefault:"gemini"`
	AITimeout    time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	GeminiModel  string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	HFAPIKey     string        `env:"HUGGINGFACE_API_KEY"`
	HFModel      string        `env:"HF_MODEL" envDefault:"mistralai/Mistral-7B-Instruct-v0.3"`

	DB DBConfig

	SMTPHost       string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	EmailUser      string `env:"EMAIL_USER"`
	EmailPassword  string `env:"EMAIL_PASSWORD"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`

	MapsAPIKey         string        `env:"GOOGLE_MAPS_API_KEY"`
	DirectionsCacheTTL time.Duration `env:"DIRECTIONS_CACHE_TTL" envDefault:"30m"`
}

// DBConfig selects the relational store backing users and feedback.
type DBConfig struct {
	Driver   string `env:"DB_DRIVER" envDefault:"postgres"`
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"planner"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// ConfigError reports a missing or invalid setting. It is fatal at startup.
type ConfigError struct {
	Key string
	Msg string
}

func (e *ConfigError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("config: %s is required", e.Key)
	}
	return fmt.Sprintf("config: %s: %s", e.Key, e.Msg)
}

// Load reads an optional .env file and parses the environment into a Config.
// The returned config has already been validated.
func Load() (*Config, error) {
	// .env is optional; production sets variables directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the secret required by the selected AI provider is present.
func (c *Config) Validate() error {
	c.AIProvider = strings.ToLower(strings.TrimSpace(c.AIProvider))
	if c.AIProvider == "" {
		c.AIProvider = "gemini"
	}
	switch c.AIProvider {
	case "gemini":
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			return &ConfigError{Key: "GEMINI_API_KEY"}
		}
	case "huggingface":
		if strings.TrimSpace(c.HFAPIKey) == "" {
			return &ConfigError{Key: "HUGGINGFACE_API_KEY"}
		}
	default:
		return &ConfigError{Key: "AI_PROVIDER", Msg: fmt.Sprintf("unknown provider %q", c.AIProvider)}
	}

	switch c.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return &ConfigError{Key: "DB_DRIVER", Msg: fmt.Sprintf("unsupported driver %q", c.DB.Driver)}
	}
	return nil
}

// AllowedOrigins returns the CORS origins: local dev servers plus FRONTEND_URL entries.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(c.FrontendURL, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			origins = append(origins, u)
		}
	}
	return origins
}

// MailEnabled reports whether feedback notifications can be sent.
func (c *Config) MailEnabled() bool {
	return c.EmailUser != "" && c.EmailPassword != "" && c.RecipientEmail != ""
}
