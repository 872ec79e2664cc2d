package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/cel-go/cel"

	"github.com/Azure/paslex/internal/config"
	"github.com/Azure/paslex/internal/filter"
	"github.com/Azure/paslex/internal/index"
	"github.com/Azure/paslex/internal/logging"
	"github.com/Azure/paslex/internal/metrics"
	"github.com/Azure/paslex/internal/output"
	"github.com/Azure/paslex/lexer"
)

// Set at build time with -ldflags "-X main.version=..."
var version string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := &config.Config{}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Complete(flag.CommandLine); err != nil {
		return err
	}

	logger, err := logging.NewZapLogger(cfg.Debug, version)
	if err != nil {
		return err
	}
	ctx := logr.NewContext(context.Background(), logger)

	return tokenizeSource(ctx, cfg, os.Stdin, os.Stdout)
}

func tokenizeSource(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	logger := logr.FromContextOrDiscard(ctx)

	var recorder *metrics.Recorder
	if cfg.MetricsFile != "" {
		labels, err := config.ParseLabels(cfg.MetricsLabels)
		if err != nil {
			return err
		}
		recorder, err = metrics.NewRecorder(labels)
		if err != nil {
			return err
		}
	}

	writer, err := output.NewWriter(cfg.Format, cfg.Source, stdout)
	if err != nil {
		return err
	}

	var prgm cel.Program
	if cfg.Filter != "" {
		prgm, err = filter.Parse(cfg.Filter)
		if err != nil {
			return fmt.Errorf("parsing filter: %w", err)
		}
	}

	input, err := readSource(cfg.Source, stdin)
	if err != nil {
		return err
	}
	logger.V(1).Info("read source", "source", cfg.Source, "bytes", len(input))

	var opts []lexer.Option
	if cfg.EmitUnknown {
		opts = append(opts, lexer.WithUnknownTokens())
	}
	if cfg.SkipTrivia {
		opts = append(opts, lexer.WithoutTrivia())
	}

	start := time.Now()
	tokens := lexer.Tokenize(input, opts...)
	latency := time.Since(start)
	logging.NewLogger().LogTokenized(ctx, cfg.Source, input, tokens, latency)
	if recorder != nil {
		recorder.Observe(input, tokens, latency)
	}

	switch {
	case cfg.At >= 0:
		tok, ok := index.New(tokens).At(cfg.At)
		if !ok {
			return fmt.Errorf("no token covers offset %d", cfg.At)
		}
		tokens = []lexer.Token{tok}
	case cfg.Line > 0:
		tokens = index.New(tokens).OnLine(cfg.Line)
	}

	if prgm != nil {
		tokens, err = filter.Apply(ctx, prgm, tokens)
		if err != nil {
			return err
		}
	}

	if err := writer.Write(tokens...); err != nil {
		return err
	}
	if err := writer.Commit(); err != nil {
		return err
	}

	if recorder != nil {
		if err := recorder.WriteFile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.V(1).Info("wrote metrics", "path", cfg.MetricsFile)
	}
	return nil
}

func readSource(source string, stdin io.Reader) ([]byte, error) {
	if source == "-" {
		input, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return input, nil
	}

	input, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading source file: %w", err)
	}
	return input, nil
}
