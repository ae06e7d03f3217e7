package generativeAI

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ TextGenerator = (*OllamaClient)(nil)

// OllamaClient generates text through a local Ollama server's /api/generate.
type OllamaClient struct {
	client *ollama.Client
	model  string
}

// NewOllamaClient targets the server at host, e.g. http://localhost:11434.
func NewOllamaClient(host, model string, timeout time.Duration) (*OllamaClient, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	return &OllamaClient{
		client: ollama.NewClient(base, &http.Client{Timeout: timeout}),
		model:  model,
	}, nil
}

func (o *OllamaClient) Name() string { return "ollama" }

// Generate sends a non-streaming generate request and returns the response text.
func (o *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "OllamaGenerate", trace.WithAttributes(
		attribute.String("llm.model", o.model),
	))
	defer span.End()

	stream := false
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: prompt,
		Stream: &stream,
	}

	var sb strings.Builder
	err := o.client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate failed")
		return "", fmt.Errorf("ollama generate: %w", err)
	}

	span.SetStatus(codes.Ok, "generated")
	return sb.String(), nil
}
