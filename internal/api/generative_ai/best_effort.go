package generativeAI

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/FACorreiaa/go-place-finder/app/observability/metrics"
)

const (
	// DefaultFallback replaces the description when generation fails.
	DefaultFallback = "Error querying Ollama API"
	// EmptyResponse is returned when the model answers with no text.
	EmptyResponse = "No response from model."
)

// Description is the outcome of a best-effort generation.
type Description struct {
	Text string
	// Fallback is set when Text is the fallback string rather than model output.
	Fallback bool
}

// BestEffortDescriber bounds a TextGenerator call with a timeout and turns any
// failure into a fixed fallback text. It never returns an error.
type BestEffortDescriber struct {
	generator TextGenerator
	timeout   time.Duration
	fallback  string
	logger    *slog.Logger
	metrics   *metrics.AppMetrics
}

func NewBestEffortDescriber(generator TextGenerator, timeout time.Duration, fallback string, logger *slog.Logger, m *metrics.AppMetrics) *BestEffortDescriber {
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &BestEffortDescriber{
		generator: generator,
		timeout:   timeout,
		fallback:  fallback,
		logger:    logger,
		metrics:   m,
	}
}

func (d *BestEffortDescriber) Describe(ctx context.Context, prompt string) Description {
	l := d.logger.With(slog.String("method", "Describe"), slog.String("provider", d.generator.Name()))

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := d.generator.Generate(ctx, prompt)
	d.metrics.RecordProviderCall(ctx, d.generator.Name(), "generate", start)
	if err != nil {
		l.ErrorContext(ctx, "Request to text generation provider failed", slog.Any("error", err))
		d.metrics.RecordFallback(ctx, d.generator.Name())
		return Description{Text: d.fallback, Fallback: true}
	}

	if strings.TrimSpace(text) == "" {
		l.WarnContext(ctx, "Text generation provider returned an empty response")
		return Description{Text: EmptyResponse}
	}
	return Description{Text: text}
}
