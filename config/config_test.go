package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.HTTPPort)
	assert.Equal(t, "9090", cfg.Handlers.Prometheus.Port)
	assert.Equal(t, "Jakarta, Indonesia", cfg.Places.DefaultCity)
	assert.Equal(t, uint(5000), cfg.Places.Radius)
	assert.Equal(t, "nth", cfg.Places.Selection.Policy)
	assert.Equal(t, 3, cfg.Places.Selection.Index)
	assert.Equal(t, 10*time.Second, cfg.Maps.Timeout)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "Error querying Ollama API", cfg.LLM.Fallback)
	assert.Equal(t, "mistral", cfg.LLM.Ollama.Model)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "AIza-env-key")
	t.Setenv("OLLAMA_HOST", "http://ollama:11434")
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "AIza-env-key", cfg.Maps.APIKey)
	assert.Equal(t, "http://ollama:11434", cfg.LLM.Ollama.Host)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
}
