package logging

import (
	"bytes"
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Azure/paslex/lexer"
)

// NewZapLogger builds the process logger. Every entry carries a random runID,
// and serviceBuild when buildVersion is provided.
func NewZapLogger(debug bool, buildVersion string) (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), err
	}

	logger := zapr.NewLogger(zl).WithValues("runID", uuid.NewString())
	if buildVersion != "" {
		logger = logger.WithValues("serviceBuild", buildVersion)
	}
	return logger, nil
}

// Logger emits structured events about tokenization runs.
type Logger struct {
	logFn func(ctx context.Context, msg string, args ...any)
}

// NewLogger creates a logger that writes to the logr.Logger carried by the context.
func NewLogger() *Logger {
	return &Logger{
		logFn: func(ctx context.Context, msg string, args ...any) {
			logr.FromContextOrDiscard(ctx).V(0).Info(msg, args...)
		},
	}
}

func (l *Logger) Log(ctx context.Context, msg string, field ...any) {
	enrichedFields := []any{"timestamp", time.Now()}
	enrichedFields = append(enrichedFields, field...)
	l.logFn(ctx, msg, enrichedFields...)
}

func (l *Logger) WithLogFn(fn func(ctx context.Context, msg string, args ...any)) *Logger {
	l.logFn = fn
	return l
}

// LogTokenized logs a summary of a single Tokenize call.
func (l *Logger) LogTokenized(ctx context.Context, source string, input []byte, tokens []lexer.Token, latency time.Duration) {
	fields := append([]any{"source", source, "latency", latency.Milliseconds()}, TokenFields(input, tokens)...)
	l.Log(ctx, "tokenized source", fields...)
}

// TokenFields summarizes a token stream as logr key/value pairs.
// lines is the line number at the end of input, 0 when input is empty.
func TokenFields(input []byte, tokens []lexer.Token) []any {
	var keywords, comments, unknown, lines int
	for _, tok := range tokens {
		switch {
		case tok.Type.IsKeyword():
			keywords++
		case tok.Type == lexer.BraceComment || tok.Type == lexer.ParenComment:
			comments++
		case tok.Type == lexer.Unknown:
			unknown++
		}
	}
	if len(input) > 0 {
		lines = bytes.Count(input, []byte{'\n'}) + 1
	}

	return []any{
		"bytes", len(input),
		"tokens", len(tokens),
		"lines", lines,
		"keywords", keywords,
		"comments", comments,
		"unknown", unknown,
	}
}
