package poi

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-place-finder/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-place-finder/internal/api/generative_ai"
	"github.com/FACorreiaa/go-place-finder/internal/types"
)

const (
	DefaultCity         = "Jakarta, Indonesia"
	DefaultRadius       = uint(5000)
	DefaultTimeout      = 10 * time.Second
	defaultProviderName = "google_maps"
)

// Geocoder resolves a free-text address. A nil result with a nil error means
// the address is unknown.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*types.Coordinates, error)
}

// PlaceSearcher finds places matching a text query around an origin.
type PlaceSearcher interface {
	SearchText(ctx context.Context, query string, origin types.Coordinates, radius uint) ([]types.PlaceCandidate, error)
}

// Describer produces a description and never fails; see generativeAI.BestEffortDescriber.
type Describer interface {
	Describe(ctx context.Context, prompt string) generativeAI.Description
}

var _ Service = (*ServiceImpl)(nil)

// Service finds one place for a query and describes it.
type Service interface {
	FindPlace(ctx context.Context, req types.PlaceQueryRequest) (*types.PlaceQueryResponse, error)
}

type Options struct {
	DefaultCity string
	// Radius of the places search, in meters.
	Radius uint
	// ProviderTimeout bounds each geocoding and places call.
	ProviderTimeout time.Duration
	// ProviderName is reported in ServiceErrors.
	ProviderName string
}

func (o Options) withDefaults() Options {
	if o.DefaultCity == "" {
		o.DefaultCity = DefaultCity
	}
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.ProviderTimeout <= 0 {
		o.ProviderTimeout = DefaultTimeout
	}
	if o.ProviderName == "" {
		o.ProviderName = defaultProviderName
	}
	return o
}

type ServiceImpl struct {
	logger    *slog.Logger
	geocoder  Geocoder
	places    PlaceSearcher
	describer Describer
	selector  Selector
	links     LinkBuilder
	opts      Options
	metrics   *metrics.AppMetrics
}

func NewServiceImpl(
	geocoder Geocoder,
	places PlaceSearcher,
	describer Describer,
	selector Selector,
	links LinkBuilder,
	opts Options,
	logger *slog.Logger,
	m *metrics.AppMetrics,
) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		geocoder:  geocoder,
		places:    places,
		describer: describer,
		selector:  selector,
		links:     links,
		opts:      opts.withDefaults(),
		metrics:   m,
	}
}

// FindPlace geocodes the origin city, searches places near it, selects one
// candidate and describes it. Geocoding, search and selection failures end
// the request; description failures degrade to a fallback text.
func (s *ServiceImpl) FindPlace(ctx context.Context, req types.PlaceQueryRequest) (resp *types.PlaceQueryResponse, err error) {
	lookupID := uuid.NewString()
	ctx, span := otel.Tracer("PlaceService").Start(ctx, "FindPlace", trace.WithAttributes(
		attribute.String("lookup.id", lookupID),
		attribute.String("place.query", req.Query),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "FindPlace"), slog.String("lookupID", lookupID))
	defer func() { s.metrics.RecordQuery(ctx, outcomeOf(err)) }()

	query := strings.TrimSpace(req.Query)
	if query == "" {
		l.WarnContext(ctx, "Rejected empty query")
		span.SetStatus(codes.Error, "empty query")
		return nil, types.ErrEmptyQuery
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		city = s.opts.DefaultCity
	}
	span.SetAttributes(attribute.String("place.city", city))
	l = l.With(slog.String("query", query), slog.String("city", city))

	origin, err := s.geocode(ctx, city)
	if err != nil {
		l.DebugContext(ctx, "Geocoding failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocoding failed")
		return nil, err
	}
	if origin == nil {
		l.WarnContext(ctx, "Unknown city")
		span.SetStatus(codes.Error, "unknown city")
		return nil, types.ErrUnknownCity
	}

	candidates, err := s.search(ctx, query, *origin)
	if err != nil {
		l.DebugContext(ctx, "Places search failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "places search failed")
		return nil, err
	}
	if len(candidates) == 0 {
		l.WarnContext(ctx, "No places found")
		span.SetStatus(codes.Error, "no places found")
		return nil, types.ErrNoPlaces
	}

	place, err := s.selector.Select(candidates)
	if err != nil {
		l.WarnContext(ctx, "Selection policy could not pick a place",
			slog.String("policy", s.selector.Name()),
			slog.Int("results", len(candidates)),
			slog.Any("error", err))
		span.SetStatus(codes.Error, "selection failed")
		return nil, err
	}
	span.SetAttributes(attribute.String("place.name", place.Name), attribute.Int("places.count", len(candidates)))

	desc := s.describer.Describe(ctx, GetPlaceDescriptionPrompt(place.Name))
	if desc.Fallback {
		span.AddEvent("description fallback used")
	}

	l.InfoContext(ctx, "Place found",
		slog.String("place", place.Name),
		slog.String("address", place.Address),
		slog.Bool("description_fallback", desc.Fallback))
	span.SetStatus(codes.Ok, "place found")

	return &types.PlaceQueryResponse{
		PlaceName:        place.Name,
		PlaceDescription: desc.Text,
		GoogleMapsLink:   s.links.Directions(*origin, place.Coordinates),
		EmbedLink:        s.links.Embed(*origin, place.Coordinates),
	}, nil
}

func (s *ServiceImpl) geocode(ctx context.Context, city string) (*types.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	origin, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		return nil, &types.ServiceError{Provider: s.opts.ProviderName, Op: "geocode", Err: err}
	}
	return origin, nil
}

func (s *ServiceImpl) search(ctx context.Context, query string, origin types.Coordinates) ([]types.PlaceCandidate, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	candidates, err := s.places.SearchText(ctx, query, origin, s.opts.Radius)
	if err != nil {
		return nil, &types.ServiceError{Provider: s.opts.ProviderName, Op: "places search", Err: err}
	}
	return candidates, nil
}

func outcomeOf(err error) string {
	var svcErr *types.ServiceError
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, types.ErrInvalidRequest):
		return metrics.OutcomeInvalidRequest
	case errors.Is(err, types.ErrNoResultsFound):
		return metrics.OutcomeNoResults
	case errors.As(err, &svcErr):
		return metrics.OutcomeServiceError
	default:
		return "unknown"
	}
}
