package metrics

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome labels recorded on place_queries_total.
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeNoResults      = "no_results"
	OutcomeServiceError   = "service_error"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	PlaceQueriesTotal         metric.Int64Counter
	ProviderCallDuration      metric.Float64Histogram
	DescriptionFallbacksTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// NewAppMetrics creates the instruments on the given meter.
func NewAppMetrics(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.PlaceQueriesTotal, err = meter.Int64Counter(
		"place_queries_total",
		metric.WithDescription("Total number of place queries handled, by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("place_queries_total: %w", err)
	}

	m.ProviderCallDuration, err = meter.Float64Histogram(
		"provider_call_duration_seconds",
		metric.WithDescription("Duration of outbound provider calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("provider_call_duration_seconds: %w", err)
	}

	m.DescriptionFallbacksTotal, err = meter.Int64Counter(
		"description_fallbacks_total",
		metric.WithDescription("Total number of descriptions replaced by the fallback text"),
		metric.WithUnit("{fallback}"),
	)
	if err != nil {
		return nil, fmt.Errorf("description_fallbacks_total: %w", err)
	}

	return m, nil
}

// InitAppMetrics initializes the global metrics instruments ONLY ONCE,
// using the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		m, err := NewAppMetrics(otel.GetMeterProvider().Meter("PlaceFinder"))
		if err != nil {
			log.Fatalf("Metrics: %v", err)
		}
		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// RecordQuery counts one handled place query.
func (m *AppMetrics) RecordQuery(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.PlaceQueriesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordProviderCall observes the latency of one provider call started at start.
func (m *AppMetrics) RecordProviderCall(ctx context.Context, provider, op string, start time.Time) {
	if m == nil {
		return
	}
	m.ProviderCallDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("op", op),
	))
}

// RecordFallback counts one description replaced by the fallback text.
func (m *AppMetrics) RecordFallback(ctx context.Context, provider string) {
	if m == nil {
		return
	}
	m.DescriptionFallbacksTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("provider", provider)))
}
