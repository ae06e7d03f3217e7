// Package gmaps adapts the Google Maps geocoding and places APIs to the
// place-finder domain types.
package gmaps

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"googlemaps.github.io/maps"

	"github.com/FACorreiaa/go-place-finder/app/observability/metrics"
	"github.com/FACorreiaa/go-place-finder/internal/types"
)

// ProviderName labels spans, metrics and ServiceErrors coming from this package.
const ProviderName = "google_maps"

type Client struct {
	logger  *slog.Logger
	maps    *maps.Client
	metrics *metrics.AppMetrics
}

type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.AppMetrics
}

// WithBaseURL points the client at a different API host.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

func WithMetrics(m *metrics.AppMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewClient builds a Maps client. The timeout bounds every HTTP round trip
// made to the provider.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger, opts ...Option) (*Client, error) {
	o := options{httpClient: &http.Client{Timeout: timeout}}
	for _, opt := range opts {
		opt(&o)
	}

	mapsOpts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(o.httpClient),
	}
	if o.baseURL != "" {
		mapsOpts = append(mapsOpts, maps.WithBaseURL(o.baseURL))
	}

	mc, err := maps.NewClient(mapsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{
		logger:  logger,
		maps:    mc,
		metrics: o.metrics,
	}, nil
}

// Geocode resolves an address to the coordinates of its first match.
// It returns nil coordinates and no error when the provider finds nothing.
func (c *Client) Geocode(ctx context.Context, address string) (*types.Coordinates, error) {
	ctx, span := otel.Tracer("GoogleMaps").Start(ctx, "Geocode", trace.WithAttributes(
		attribute.String("geocode.address", address),
	))
	defer span.End()

	start := time.Now()
	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	c.metrics.RecordProviderCall(ctx, ProviderName, "geocode", start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocode failed")
		return nil, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		c.logger.DebugContext(ctx, "Geocode returned no results", slog.String("address", address))
		span.SetStatus(codes.Ok, "no results")
		return nil, nil
	}

	loc := results[0].Geometry.Location
	span.SetStatus(codes.Ok, "resolved")
	return &types.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// SearchText runs a places text search biased to radius meters around origin.
func (c *Client) SearchText(ctx context.Context, query string, origin types.Coordinates, radius uint) ([]types.PlaceCandidate, error) {
	ctx, span := otel.Tracer("GoogleMaps").Start(ctx, "SearchText", trace.WithAttributes(
		attribute.String("places.query", query),
		attribute.Int("places.radius", int(radius)),
	))
	defer span.End()

	start := time.Now()
	resp, err := c.maps.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Location: &maps.LatLng{Lat: origin.Latitude, Lng: origin.Longitude},
		Radius:   radius,
	})
	c.metrics.RecordProviderCall(ctx, ProviderName, "text_search", start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "text search failed")
		return nil, fmt.Errorf("text search %q: %w", query, err)
	}

	candidates := make([]types.PlaceCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, toCandidate(r))
	}

	span.SetAttributes(attribute.Int("places.count", len(candidates)))
	span.SetStatus(codes.Ok, "searched")
	return candidates, nil
}

func toCandidate(r maps.PlacesSearchResult) types.PlaceCandidate {
	address := r.Vicinity
	if address == "" {
		address = r.FormattedAddress
	}
	if address == "" {
		address = types.AddressNotAvailable
	}
	return types.PlaceCandidate{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: address,
		Rating:  float64(r.Rating),
		Coordinates: types.Coordinates{
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
		},
	}
}
