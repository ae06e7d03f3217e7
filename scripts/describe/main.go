// Command describe sends one description prompt to the configured text
// generation provider, to check an Ollama or Gemini setup by hand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	appLogger "github.com/FACorreiaa/go-place-finder/app/logger"
	"github.com/FACorreiaa/go-place-finder/config"
	generativeAI "github.com/FACorreiaa/go-place-finder/internal/api/generative_ai"
	"github.com/FACorreiaa/go-place-finder/internal/api/poi"
	"github.com/FACorreiaa/go-place-finder/internal/container"
)

var place = flag.String("place", "Monas", "the place name to describe")

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := appLogger.New(cfg.Mode, os.Stderr)

	ctx := context.Background()
	generator, err := container.NewTextGenerator(ctx, &cfg)
	if err != nil {
		log.Fatalf("failed to create text generator: %v", err)
	}
	logger.Info("Sending prompt", "provider", generator.Name(), "place", *place)

	describer := generativeAI.NewBestEffortDescriber(generator, cfg.LLM.Timeout, cfg.LLM.Fallback, logger, nil)
	desc := describer.Describe(ctx, poi.GetPlaceDescriptionPrompt(*place))
	fmt.Println(desc.Text)
	if desc.Fallback {
		os.Exit(1)
	}
}
