package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/nfrund/gopang/internal/domain"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	AssetsEmbed = "embed"
	AssetsDisk  = "disk"

	devSessionSecret = "gopang-development-session-secret"
)

// Provider is the read-only view of the configuration handed to services.
type Provider interface {
	GetAppAddr() string
	GetAppEnv() string
	GetSessionSecret() string
	GetAssetsMode() string
	GetAssetsDir() string
	GetStateTTL() time.Duration
	GetRateLimit() float64
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string        `validate:"required"`
	AppEnv        string        `validate:"oneof=development production test"`
	SessionSecret string        `validate:"required,min=16"`
	AssetsMode    string        `validate:"oneof=embed disk"`
	AssetsDir     string        `validate:"required_if=AssetsMode disk"`
	StateTTL      time.Duration `validate:"gt=0"`
	// RateLimit is the number of UI events per second allowed per client.
	RateLimit float64 `validate:"gt=0"`
}

// New loads configuration from the environment and exits the process when it
// is invalid.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Load reads the environment without touching .env files.
func Load() (*Config, error) {
	cfg := &Config{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		AppEnv:        getEnv("APP_ENV", EnvDevelopment),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		AssetsMode:    getEnv("APP_ASSETS", AssetsEmbed),
		AssetsDir:     getEnv("APP_ASSETS_DIR", "web/static"),
	}
	if cfg.SessionSecret == "" && cfg.AppEnv != EnvProduction {
		cfg.SessionSecret = devSessionSecret
	}

	var err error
	if cfg.StateTTL, err = time.ParseDuration(getEnv("STATE_TTL", "2h")); err != nil {
		return nil, fmt.Errorf("%w: STATE_TTL: %v", domain.ErrInvalidConfig, err)
	}
	if cfg.RateLimit, err = strconv.ParseFloat(getEnv("RATE_LIMIT", "20"), 64); err != nil {
		return nil, fmt.Errorf("%w: RATE_LIMIT: %v", domain.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppAddr() string         { return c.AppAddr }
func (c *Config) GetAppEnv() string          { return c.AppEnv }
func (c *Config) GetSessionSecret() string   { return c.SessionSecret }
func (c *Config) GetAssetsMode() string      { return c.AssetsMode }
func (c *Config) GetAssetsDir() string       { return c.AssetsDir }
func (c *Config) GetStateTTL() time.Duration { return c.StateTTL }
func (c *Config) GetRateLimit() float64      { return c.RateLimit }
