package generativeAI

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) Name() string { return "mock" }

// blockingGenerator waits until its context is done.
type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, _ string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (blockingGenerator) Name() string { return "blocking" }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBestEffortDescriber_Describe(t *testing.T) {
	ctx := context.Background()
	prompt := "Provide a short description for a place named 'Kopi A'."

	t.Run("success", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", mock.Anything, prompt).Return("A cozy cafe.", nil).Once()
		d := NewBestEffortDescriber(gen, time.Second, "", discardLogger(), nil)

		desc := d.Describe(ctx, prompt)
		assert.Equal(t, Description{Text: "A cozy cafe."}, desc)
		gen.AssertExpectations(t)
	})

	t.Run("provider error falls back", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", mock.Anything, prompt).Return("", errors.New("connection refused")).Once()
		d := NewBestEffortDescriber(gen, time.Second, "", discardLogger(), nil)

		desc := d.Describe(ctx, prompt)
		assert.True(t, desc.Fallback)
		assert.Equal(t, DefaultFallback, desc.Text)
		gen.AssertExpectations(t)
	})

	t.Run("custom fallback text", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", mock.Anything, prompt).Return("", errors.New("boom")).Once()
		d := NewBestEffortDescriber(gen, time.Second, "Description unavailable", discardLogger(), nil)

		assert.Equal(t, "Description unavailable", d.Describe(ctx, prompt).Text)
	})

	t.Run("empty response", func(t *testing.T) {
		gen := new(MockTextGenerator)
		gen.On("Generate", mock.Anything, prompt).Return("  ", nil).Once()
		d := NewBestEffortDescriber(gen, time.Second, "", discardLogger(), nil)

		desc := d.Describe(ctx, prompt)
		assert.False(t, desc.Fallback)
		assert.Equal(t, EmptyResponse, desc.Text)
	})

	t.Run("timeout falls back", func(t *testing.T) {
		d := NewBestEffortDescriber(blockingGenerator{}, 20*time.Millisecond, "", discardLogger(), nil)

		start := time.Now()
		desc := d.Describe(ctx, prompt)
		assert.True(t, desc.Fallback)
		assert.Equal(t, DefaultFallback, desc.Text)
		assert.Less(t, time.Since(start), time.Second)
	})
}
