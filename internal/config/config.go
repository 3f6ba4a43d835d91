package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetPort() string
	GetRegisterAPIURL() string
	GetRegisterAPITimeout() time.Duration
	GetSessionSecret() string
	GetLoginPath() string
	GetRedirectDelay() time.Duration
	GetValidateFirst() bool
	GetAppEnv() string
}

// Config holds all configuration for the application.
type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	RegisterAPIURL     string        `env:"REGISTER_API_URL,required,notEmpty"`
	RegisterAPITimeout time.Duration `env:"REGISTER_API_TIMEOUT" envDefault:"10s"`
	SessionSecret      string        `env:"SESSION_SECRET,required,notEmpty"`
	LoginPath          string        `env:"LOGIN_PATH" envDefault:"/login"`
	RedirectDelay      time.Duration `env:"REDIRECT_DELAY" envDefault:"2s"`
	ValidateFirst      bool          `env:"REGISTER_VALIDATE_FIRST" envDefault:"false"`
	AppEnv             string        `env:"APP_ENV" envDefault:"development"`
}

// Load reads the .env file if present and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// New loads configuration and exits if it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func (c *Config) GetPort() string                      { return c.Port }
func (c *Config) GetRegisterAPIURL() string            { return c.RegisterAPIURL }
func (c *Config) GetRegisterAPITimeout() time.Duration { return c.RegisterAPITimeout }
func (c *Config) GetSessionSecret() string             { return c.SessionSecret }
func (c *Config) GetLoginPath() string                 { return c.LoginPath }
func (c *Config) GetRedirectDelay() time.Duration      { return c.RedirectDelay }
func (c *Config) GetValidateFirst() bool               { return c.ValidateFirst }
func (c *Config) GetAppEnv() string                    { return c.AppEnv }
