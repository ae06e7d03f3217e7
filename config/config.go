package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode     string `mapstructure:"mode"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	Maps struct {
		APIKey string `mapstructure:"apiKey"`
		// BaseURL overrides the Maps API host; empty means the Google default.
		BaseURL string        `mapstructure:"baseURL"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"maps"`
	Places struct {
		DefaultCity string  `mapstructure:"defaultCity"`
		Radius      uint    `mapstructure:"radius"`
		Selection   struct {
			Policy string `mapstructure:"policy"`
			Index  int    `mapstructure:"index"`
		} `mapstructure:"selection"`
	} `mapstructure:"places"`
	LLM struct {
		Provider string        `mapstructure:"provider"`
		Timeout  time.Duration `mapstructure:"timeout"`
		Fallback string        `mapstructure:"fallback"`
		Ollama   struct {
			Host  string `mapstructure:"host"`
			Model string `mapstructure:"model"`
		} `mapstructure:"ollama"`
		Gemini struct {
			APIKey string `mapstructure:"apiKey"`
			Model  string `mapstructure:"model"`
		} `mapstructure:"gemini"`
	} `mapstructure:"llm"`
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"maps.apiKey":       "GOOGLE_MAPS_API_KEY",
	"llm.gemini.apiKey": "GOOGLE_GEMINI_API_KEY",
	"llm.ollama.host":   "OLLAMA_HOST",
	"llm.provider":      "LLM_PROVIDER",
	"server.HTTPPort":   "HTTP_PORT",
	"mode":              "APP_ENV",
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
