package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	AppEnv      string   `env:"APP_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	PostgresURL string `env:"POSTGRES_URL"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
	// Accounts registered with one of these emails get the admin role.
	AdminEmails []string `env:"ADMIN_EMAILS" envSeparator:","`

	AI AIConfig
}

type AIConfig struct {
	Provider         string        `env:"AI_PROVIDER" envDefault:"none"`
	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	GeminiModel      string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIModel      string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	EstimateCacheTTL time.Duration `env:"ESTIMATE_CACHE_TTL" envDefault:"6h"`
}

// APIKey returns the key of the selected provider.
func (a AIConfig) APIKey() string {
	switch strings.ToLower(a.Provider) {
	case "gemini":
		return a.GeminiAPIKey
	case "openai":
		return a.OpenAIAPIKey
	}
	return ""
}

func (a AIConfig) Model() string {
	switch strings.ToLower(a.Provider) {
	case "gemini":
		return a.GeminiModel
	case "openai":
		return a.OpenAIModel
	}
	return ""
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load reads an optional .env file, then the process environment.
// Variables already set in the environment win over .env entries.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.PostgresURL == "" {
		errs = append(errs, errors.New("POSTGRES_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	switch strings.ToLower(c.AI.Provider) {
	case "none", "":
	case "gemini", "openai":
		if c.AI.APIKey() == "" {
			errs = append(errs, fmt.Errorf("API key for AI_PROVIDER=%s is required", c.AI.Provider))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider))
	}
	return errors.Join(errs...)
}
