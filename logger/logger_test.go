package logger_test

import (
	"testing"

	"github.com/purposeinplay/go-money/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("Development", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		log, err := logger.New(logger.Config{Service: "money"})
		req.NoError(err)

		req.True(log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("ProductionLevel", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		log, err := logger.New(logger.Config{
			Service:     "money",
			Environment: logger.EnvironmentProduction,
			Level:       "warn",
		})
		req.NoError(err)

		req.False(log.Core().Enabled(zapcore.InfoLevel))
		req.True(log.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("UnknownEnvironment", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		_, err := logger.New(logger.Config{Environment: "staging"})
		req.EqualError(err, `unknown environment "staging"`)
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		_, err := logger.New(logger.Config{Level: "loud"})
		req.Error(err)
	})

	t.Run("Stackdriver", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		dev, err := logger.NewStackdriverDevelopment("money")
		req.NoError(err)
		req.True(dev.Core().Enabled(zapcore.DebugLevel))

		prod, err := logger.NewStackdriverProduction("money")
		req.NoError(err)
		req.False(prod.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("WithLevel", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		dev, err := logger.NewStackdriverDevelopment("money", logger.WithLevel(zapcore.ErrorLevel))
		req.NoError(err)
		req.False(dev.Core().Enabled(zapcore.WarnLevel))
		req.True(dev.Core().Enabled(zapcore.ErrorLevel))

		prod, err := logger.NewStackdriverProduction("money", logger.WithLevel(zapcore.DebugLevel))
		req.NoError(err)
		req.True(prod.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("DevelopmentLevel", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		log, err := logger.New(logger.Config{
			Service:     "money",
			Environment: logger.EnvironmentDevelopment,
			Level:       "error",
		})
		req.NoError(err)

		req.False(log.Core().Enabled(zapcore.WarnLevel))
	})
}
