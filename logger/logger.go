package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Available environments.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Config selects the constructor and the minimum level of a logger.
type Config struct {
	Service     string
	Environment string
	Level       string
}

// An Option adjusts the zap configuration of a logger before it is built.
type Option interface {
	apply(*zap.Config)
}

type funcOption struct {
	f func(*zap.Config)
}

func (fo *funcOption) apply(cfg *zap.Config) {
	fo.f(cfg)
}

func newFuncOption(f func(*zap.Config)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithLevel replaces the default level of the environment.
func WithLevel(level zapcore.Level) Option {
	return newFuncOption(func(cfg *zap.Config) {
		cfg.Level = zap.NewAtomicLevelAt(level)
	})
}

// New returns a *zap.Logger for the configured environment.
// An empty environment means development, an empty level
// keeps the default level of the environment.
func New(cfg Config) (*zap.Logger, error) {
	var opts []Option

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse level: %w", err)
		}

		opts = append(opts, WithLevel(level))
	}

	switch cfg.Environment {
	case EnvironmentProduction:
		return NewStackdriverProduction(cfg.Service, opts...)
	case EnvironmentDevelopment, "":
		return NewStackdriverDevelopment(cfg.Service, opts...)
	default:
		return nil, fmt.Errorf("unknown environment %q", cfg.Environment)
	}
}

// NewStackdriverDevelopment returns a new *zap.Logger that supports
// Google Stackdriver's structured logging.
// Logging is enabled at DebugLevel and above unless WithLevel is given.
func NewStackdriverDevelopment(service string, opts ...Option) (*zap.Logger, error) {
	return build(zapdriver.NewDevelopmentConfig(), service, opts)
}

// NewStackdriverProduction returns a new *zap.Logger that supports
// Google Stackdriver's structured logging.
// Logging is enabled at InfoLevel and above unless WithLevel is given.
func NewStackdriverProduction(service string, opts ...Option) (*zap.Logger, error) {
	return build(zapdriver.NewProductionConfig(), service, opts)
}

// build writes to stderr, stdout is left to command results.
func build(cfg zap.Config, service string, opts []Option) (*zap.Logger, error) {
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{
		"service": service,
	}

	for _, opt := range opts {
		opt.apply(&cfg)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return log, nil
}
