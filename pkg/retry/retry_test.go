package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	errTransient := errors.New("transient")

	t.Run("SucceedsFirstAttempt", func(t *testing.T) {
		var calls int
		err := Do(context.Background(), RetryConfig{MaxAttempts: 3}, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		var calls int
		c := RetryConfig{
			MaxAttempts: 3,
			Backoff:     LinearBackoff(time.Millisecond),
		}
		err := Do(context.Background(), c, func() error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		var calls int
		c := RetryConfig{
			MaxAttempts: 3,
			Backoff:     LinearBackoff(time.Millisecond),
		}
		err := Do(context.Background(), c, func() error {
			calls++
			return errTransient
		})
		require.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("StopsOnNonRetryableError", func(t *testing.T) {
		errFatal := errors.New("fatal")
		var calls int
		c := RetryConfig{
			MaxAttempts: 3,
			Backoff:     LinearBackoff(time.Millisecond),
			ShouldRetry: func(err error) bool {
				return !errors.Is(err, errFatal)
			},
		}
		err := Do(context.Background(), c, func() error {
			calls++
			return errFatal
		})
		require.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Do(ctx, RetryConfig{}, func() error {
			t.Fatal("fn should not run")
			return nil
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDoWithResult(t *testing.T) {
	t.Run("ReturnsResult", func(t *testing.T) {
		v, err := DoWithResult(
			context.Background(), RetryConfig{},
			func() (int, error) { return 42, nil },
		)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("ZeroValueOnFailure", func(t *testing.T) {
		errBoom := errors.New("boom")
		c := RetryConfig{
			MaxAttempts: 2,
			Backoff:     LinearBackoff(time.Millisecond),
		}
		v, err := DoWithResult(
			context.Background(), c,
			func() (string, error) { return "partial", errBoom },
		)
		require.ErrorIs(t, err, errBoom)
		assert.Zero(t, v)
	})
}
