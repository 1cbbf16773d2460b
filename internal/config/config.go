package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the API server, read from app.env or the environment.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS" validate:"required"`
	APIPrefix       string        `mapstructure:"API_PREFIX" validate:"required,startswith=/"`
	LogLevel        string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat       string        `mapstructure:"LOG_FORMAT" validate:"oneof=console json"`
	GinMode         string        `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
	LeadProvider    string        `mapstructure:"LEAD_PROVIDER" validate:"required"`
	CORSAllowAll    bool          `mapstructure:"CORS_ALLOW_ALL"`
	CORSOrigins     string        `mapstructure:"CORS_ORIGINS" validate:"required_if=CORSAllowAll false"`
	ReadTimeout     time.Duration `mapstructure:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"WRITE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":   ":8080",
	"API_PREFIX":       "/api",
	"LOG_LEVEL":        "info",
	"LOG_FORMAT":       "console",
	"GIN_MODE":         "debug",
	"LEAD_PROVIDER":    "mock",
	"CORS_ALLOW_ALL":   true,
	"CORS_ORIGINS":     "",
	"READ_TIMEOUT":     "15s",
	"WRITE_TIMEOUT":    "15s",
	"SHUTDOWN_TIMEOUT": "10s",
}

// LoadConfig reads app.env from path when it exists; environment variables take precedence.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.APIPrefix = strings.TrimRight(cfg.APIPrefix, "/")
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}

	return &cfg, nil
}

// AllowedOrigins splits CORS_ORIGINS on commas, dropping empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
