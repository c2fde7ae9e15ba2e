package errors_test

import (
	"fmt"
	"testing"

	"github.com/purposeinplay/go-money/errors"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New(errors.ErrorTypeInvalid, 7, "invalid thing")

	t.Run("Message", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		req.Equal("invalid thing", sentinel.Error())
		req.Equal("type: invalid, code: 7, details: invalid thing", sentinel.Verbose())
	})

	t.Run("Wrapped", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		err := fmt.Errorf("%w: string \"x\"", sentinel)

		req.True(errors.Is(err, sentinel))
		req.True(errors.IsErrorType(err, errors.ErrorTypeInvalid))
		req.False(errors.IsErrorType(err, errors.ErrorTypeMismatch))
		req.True(errors.IsErrorCode(err, 7))
		req.False(errors.IsErrorCode(err, 8))
		req.Equal("invalid thing: string \"x\"", err.Error())
	})

	t.Run("Foreign", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		err := fmt.Errorf("plain")

		req.False(errors.IsErrorType(err, errors.ErrorTypeInvalid))
		req.False(errors.IsErrorCode(err, 7))
	})

	t.Run("DistinctSentinels", func(t *testing.T) {
		t.Parallel()

		req := require.New(t)

		other := errors.New(errors.ErrorTypeInvalid, 7, "invalid thing")

		req.False(errors.Is(sentinel, other))
	})
}
