package logging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/paslex/lexer"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	require.NotNil(t, logger)
	require.NotNil(t, logger.logFn)
}

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(true, "v1.2.3")
	require.NoError(t, err)
	assert.True(t, logger.V(1).Enabled())

	logger, err = NewZapLogger(false, "")
	require.NoError(t, err)
	assert.False(t, logger.V(1).Enabled())
}

func TestLogger_Log(t *testing.T) {
	t.Run("logs with timestamp", func(t *testing.T) {
		var capturedMsg string
		var capturedArgs []any

		logger := NewLogger().WithLogFn(func(ctx context.Context, msg string, args ...any) {
			capturedMsg = msg
			capturedArgs = args
		})

		logger.Log(context.Background(), "test message", "key1", "value1", "key2", 42)

		assert.Equal(t, "test message", capturedMsg)
		require.Len(t, capturedArgs, 6)

		assert.Equal(t, "timestamp", capturedArgs[0])
		_, ok := capturedArgs[1].(time.Time)
		assert.True(t, ok, "second arg should be a time.Time")

		assert.Equal(t, "key1", capturedArgs[2])
		assert.Equal(t, "value1", capturedArgs[3])
		assert.Equal(t, "key2", capturedArgs[4])
		assert.Equal(t, 42, capturedArgs[5])
	})

	t.Run("handles empty fields", func(t *testing.T) {
		var capturedArgs []any

		logger := NewLogger().WithLogFn(func(ctx context.Context, msg string, args ...any) {
			capturedArgs = args
		})

		logger.Log(context.Background(), "empty fields")

		require.Len(t, capturedArgs, 2)
		assert.Equal(t, "timestamp", capturedArgs[0])
	})

	t.Run("default log fn tolerates a context without a logger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewLogger().Log(context.Background(), "discarded")
		})
	})
}

func TestLogTokenized(t *testing.T) {
	var capturedMsg string
	var capturedArgs []any
	logger := NewLogger().WithLogFn(func(ctx context.Context, msg string, args ...any) {
		capturedMsg = msg
		capturedArgs = args
	})

	input := []byte("begin\n{ c }\nx := 1 end")
	logger.LogTokenized(context.Background(), "test.pas", input, lexer.Tokenize(input), 3*time.Millisecond)

	assert.Equal(t, "tokenized source", capturedMsg)
	assert.Contains(t, capturedArgs, "test.pas")
	assert.Contains(t, capturedArgs, int64(3))
}

func TestTokenFields(t *testing.T) {
	t.Run("counts", func(t *testing.T) {
		input := []byte("begin\n{ c }\n(* d *) x ? end")
		fields := TokenFields(input, lexer.Tokenize(input, lexer.WithUnknownTokens()))

		assert.Equal(t, []any{
			"bytes", len(input),
			"tokens", 11,
			"lines", 3,
			"keywords", 2,
			"comments", 2,
			"unknown", 1,
		}, fields)
	})

	t.Run("trailing newlines", func(t *testing.T) {
		input := []byte("x\n\n\n")
		fields := TokenFields(input, lexer.Tokenize(input))
		assert.Equal(t, []any{"bytes", 4, "tokens", 2, "lines", 4, "keywords", 0, "comments", 0, "unknown", 0}, fields)
	})

	t.Run("skipped trivia", func(t *testing.T) {
		input := []byte("x\n{ c }\n")
		fields := TokenFields(input, lexer.Tokenize(input, lexer.WithoutTrivia()))
		assert.Equal(t, []any{"bytes", len(input), "tokens", 1, "lines", 3, "keywords", 0, "comments", 0, "unknown", 0}, fields)
	})

	t.Run("empty", func(t *testing.T) {
		fields := TokenFields(nil, nil)
		assert.Equal(t, []any{"bytes", 0, "tokens", 0, "lines", 0, "keywords", 0, "comments", 0, "unknown", 0}, fields)
	})
}
