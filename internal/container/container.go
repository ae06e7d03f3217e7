package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FACorreiaa/go-place-finder/app/observability/metrics"
	"github.com/FACorreiaa/go-place-finder/config"
	generativeAI "github.com/FACorreiaa/go-place-finder/internal/api/generative_ai"
	"github.com/FACorreiaa/go-place-finder/internal/api/gmaps"
	"github.com/FACorreiaa/go-place-finder/internal/api/poi"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *slog.Logger
	POIHandler *poi.HandlerImpl
}

// NewContainer builds the provider clients once and wires them into the place
// service and its handler.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) (*Container, error) {
	var mapsOpts []gmaps.Option
	if cfg.Maps.BaseURL != "" {
		mapsOpts = append(mapsOpts, gmaps.WithBaseURL(cfg.Maps.BaseURL))
	}
	mapsOpts = append(mapsOpts, gmaps.WithMetrics(m))

	mapsClient, err := gmaps.NewClient(cfg.Maps.APIKey, cfg.Maps.Timeout, logger, mapsOpts...)
	if err != nil {
		logger.Error("Failed to initialize maps client", slog.Any("error", err))
		return nil, err
	}

	generator, err := NewTextGenerator(ctx, cfg)
	if err != nil {
		logger.Error("Failed to initialize text generator", slog.Any("error", err))
		return nil, err
	}
	describer := generativeAI.NewBestEffortDescriber(generator, cfg.LLM.Timeout, cfg.LLM.Fallback, logger, m)

	selector, err := poi.NewSelector(cfg.Places.Selection.Policy, cfg.Places.Selection.Index)
	if err != nil {
		return nil, fmt.Errorf("invalid places selection config: %w", err)
	}
	logger.Info("Place selection policy configured", slog.String("policy", selector.Name()))

	poiService := poi.NewServiceImpl(
		mapsClient,
		mapsClient,
		describer,
		selector,
		poi.LinkBuilder{APIKey: cfg.Maps.APIKey},
		poi.Options{
			DefaultCity:     cfg.Places.DefaultCity,
			Radius:          cfg.Places.Radius,
			ProviderTimeout: cfg.Maps.Timeout,
			ProviderName:    gmaps.ProviderName,
		},
		logger,
		m,
	)
	poiHandler := poi.NewHandlerImpl(poiService, logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		POIHandler: poiHandler,
	}, nil
}

// NewTextGenerator builds the TextGenerator named by llm.provider.
func NewTextGenerator(ctx context.Context, cfg *config.Config) (generativeAI.TextGenerator, error) {
	switch cfg.LLM.Provider {
	case "ollama", "":
		return generativeAI.NewOllamaClient(cfg.LLM.Ollama.Host, cfg.LLM.Ollama.Model, cfg.LLM.Timeout)
	case "gemini":
		return generativeAI.NewAIClient(ctx, cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}
}
