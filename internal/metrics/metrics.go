package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Azure/paslex/lexer"
)

var ErrReservedLabel = errors.New("constant label name is reserved")

// reservedLabels can't be used as constant labels: "type" is the variable label of the token counter
// and histograms reserve "le" for their buckets.
var reservedLabels = map[string]struct{}{"type": {}, "le": {}}

// Recorder collects metrics about tokenization runs into its own registry.
type Recorder struct {
	registry *prometheus.Registry

	tokens   *prometheus.CounterVec
	bytes    prometheus.Counter
	runs     prometheus.Counter
	duration prometheus.Histogram
}

// NewRecorder creates a recorder whose metrics all carry the given constant labels.
func NewRecorder(constLabels map[string]string) (*Recorder, error) {
	for name := range constLabels {
		if _, ok := reservedLabels[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrReservedLabel, name)
		}
	}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		tokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "paslex_tokens_total",
				Help:        "Tokens emitted, partitioned by token type",
				ConstLabels: constLabels,
			}, []string{"type"},
		),
		bytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "paslex_input_bytes_total",
				Help:        "Bytes of source text tokenized",
				ConstLabels: constLabels,
			},
		),
		runs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "paslex_tokenize_runs_total",
				Help:        "Number of buffers tokenized",
				ConstLabels: constLabels,
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "paslex_tokenize_duration_seconds",
				Help:        "Time spent tokenizing a single buffer",
				ConstLabels: constLabels,
				Buckets:     prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
	}
	for _, c := range []prometheus.Collector{r.tokens, r.bytes, r.runs, r.duration} {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}
	return r, nil
}

// Observe records one tokenization run.
func (r *Recorder) Observe(input []byte, tokens []lexer.Token, d time.Duration) {
	r.runs.Inc()
	r.bytes.Add(float64(len(input)))
	r.duration.Observe(d.Seconds())
	for _, tok := range tokens {
		r.tokens.WithLabelValues(tok.Type.String()).Inc()
	}
}

// Registry returns the registry holding every metric of the recorder.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteFile writes every metric in the Prometheus text format, suitable for the node exporter's textfile collector.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
