package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

var (
	ErrMissingSource = errors.New("a source file (or - for stdin) is required")
	ErrNegativeAt    = errors.New("offset must not be negative")
	ErrNegativeLine  = errors.New("line must not be negative")
	ErrAtWithLine    = errors.New("--at and --line are mutually exclusive")
	ErrInvalidFormat = errors.New("invalid format")
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds everything the paslex command can be told from the command line or environment.
type Config struct {
	Debug       bool
	Format      string
	Filter      string
	SkipTrivia  bool
	EmitUnknown bool

	// At is the byte offset to look up. Negative means every token is printed.
	At int

	// Line restricts output to tokens starting on this 1-based line. Zero means every line.
	Line int

	MetricsFile   string
	MetricsLabels string // comma-separated key=value pairs

	Source string // set from the first positional argument
}

func (c *Config) Bind(set *flag.FlagSet) {
	set.BoolVar(&c.Debug, "debug", false, "Enable debug logging")
	set.StringVar(&c.Format, "format", envOr("PASLEX_FORMAT", FormatText), "Output format: text, json, or yaml")
	set.StringVar(&c.Filter, "filter", "", "Optional CEL expression evaluated against each token, e.g. `token.keyword || token.type == \"Ident\"`")
	set.BoolVar(&c.SkipTrivia, "skip-trivia", false, "Drop whitespace and comment tokens")
	set.BoolVar(&c.EmitUnknown, "emit-unknown", false, "Emit unrecognized characters as Unknown tokens instead of skipping them")
	set.IntVar(&c.At, "at", -1, "Only print the token covering this byte offset")
	set.IntVar(&c.Line, "line", 0, "Only print tokens starting on this line")
	set.StringVar(&c.MetricsFile, "metrics-file", os.Getenv("PASLEX_METRICS_FILE"), "Write Prometheus metrics in text format to this path after tokenizing")
	set.StringVar(&c.MetricsLabels, "metrics-labels", "", "Constant labels added to every metric, formatted as key=value,key=value")
}

// Complete reads positional arguments from a parsed flag set and validates the result.
func (c *Config) Complete(set *flag.FlagSet) error {
	if set.NArg() < 1 {
		return ErrMissingSource
	}
	c.Source = set.Arg(0)

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w %q", ErrInvalidFormat, c.Format)
	}

	if c.At < -1 {
		return ErrNegativeAt
	}
	if c.Line < 0 {
		return ErrNegativeLine
	}
	if c.At >= 0 && c.Line > 0 {
		return ErrAtWithLine
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
