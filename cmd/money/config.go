package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/purposeinplay/go-money/errors"
	"github.com/purposeinplay/go-money/logger"
	"github.com/purposeinplay/go-money/money"
	"github.com/spf13/viper"
)

const envPrefix = "money"

// Config holds the command configuration.
type Config struct {
	// DefaultCurrency is the currency of amounts given without one.
	DefaultCurrency string `mapstructure:"default_currency" validate:"required,len=3,alpha,uppercase"`
	Environment     string `mapstructure:"environment"      validate:"oneof=development production"`
	LogLevel        string `mapstructure:"log_level"        validate:"oneof=debug info warn error dpanic panic fatal"`
}

// loadConfig loads the configuration from MONEY_* environment
// variables and from a .env file if present.
func loadConfig() (Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("default_currency", money.DefaultCurrency)
	v.SetDefault("environment", logger.EnvironmentDevelopment)
	v.SetDefault("log_level", "info")

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validateConfig reports the first invalid field by its
// environment variable name.
func validateConfig(cfg Config) error {
	vld := validator.New(validator.WithRequiredStructEnabled())

	vld.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})

	err := vld.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]

		return fmt.Errorf(
			"invalid %s_%s %q",
			strings.ToUpper(envPrefix),
			strings.ToUpper(fe.Field()),
			fe.Value(),
		)
	}

	return fmt.Errorf("validate config: %w", err)
}
