package poi

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-place-finder/internal/api"
	"github.com/FACorreiaa/go-place-finder/internal/types"
)

type HandlerImpl struct {
	poiService Service
	logger     *slog.Logger
}

func NewHandlerImpl(poiService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		poiService: poiService,
		logger:     logger,
	}
}

// FindPlaces godoc
// @Summary      Find a place
// @Description  Geocodes the origin city, searches places matching the query near it, and returns one place with a generated description and map links.
// @Tags         Places
// @Accept       json
// @Produce      json
// @Param        request body types.PlaceQueryRequest true "Place query"
// @Success      200 {object} types.PlaceQueryResponse
// @Failure      400 {object} api.Response "Empty query, unknown city or no places found"
// @Failure      500 {object} api.Response "Maps provider error"
// @Router       /find-places [post]
func (h *HandlerImpl) FindPlaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlaceHandler").Start(r.Context(), "FindPlaces", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/find-places"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "FindPlaces"))
	l.DebugContext(ctx, "Find places handler invoked")

	var req types.PlaceQueryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.poiService.FindPlace(ctx, req)
	if err != nil {
		status, message := errorStatus(err)
		if status >= http.StatusInternalServerError {
			l.ErrorContext(ctx, "Failed to find place", slog.Any("error", err))
		} else {
			l.InfoContext(ctx, "Place query rejected", slog.Any("error", err))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, message)
		span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(status))
		api.ErrorResponse(w, r, status, message)
		return
	}

	span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(http.StatusOK))
	span.SetStatus(codes.Ok, "place found")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// errorStatus maps service errors to an HTTP status and a client-facing message.
func errorStatus(err error) (int, string) {
	var (
		svcErr *types.ServiceError
		urlErr *url.Error
	)
	switch {
	case errors.Is(err, types.ErrEmptyQuery):
		return http.StatusBadRequest, "Query cannot be empty"
	case errors.Is(err, types.ErrUnknownCity):
		return http.StatusBadRequest, "Invalid city name"
	case errors.Is(err, types.ErrSelectionOutOfRange):
		return http.StatusBadRequest, "Not enough places found for your query."
	case errors.Is(err, types.ErrNoResultsFound):
		return http.StatusBadRequest, "No places found for your query."
	case errors.Is(err, types.ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request"
	case errors.As(err, &svcErr) && errors.As(svcErr.Err, &urlErr):
		// Transport errors carry the upstream URL, API key included.
		if urlErr.Timeout() {
			return http.StatusInternalServerError, "Google Maps API error: request to provider timed out"
		}
		return http.StatusInternalServerError, "Google Maps API error: request to provider failed"
	case errors.As(err, &svcErr):
		return http.StatusInternalServerError, "Google Maps API error: " + svcErr.Err.Error()
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
