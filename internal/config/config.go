package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port            int     `yaml:"port"`
	GeminiAPIKey    string  `yaml:"gemini_api_key"`
	GeminiModel     string  `yaml:"gemini_model"`
	GeminiBaseURL   string  `yaml:"gemini_base_url"`
	TimeoutSeconds  int     `yaml:"timeout_seconds"`
	Temperature     float64 `yaml:"temperature"`
	TopK            int     `yaml:"top_k"`
	TopP            float64 `yaml:"top_p"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	PromptPath      string  `yaml:"prompt_path"`
	APIKey          string  `yaml:"api_key"`
	AllowedOrigin   string  `yaml:"allowed_origin"`
	Verbose         bool    `yaml:"verbose"`
}

func defaults() Config {
	return Config{
		Port:            8080,
		GeminiModel:     "gemini-1.5-flash",
		TimeoutSeconds:  60,
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 8192,
		PromptPath:      "prompts/shader.txt",
		AllowedOrigin:   "*",
	}
}

// Load loads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults
// plus env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("SHADER_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SHADER_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("SHADER_GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("SHADER_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("SHADER_GEMINI_BASE_URL"); v != "" {
		cfg.GeminiBaseURL = v
	}
	if v := os.Getenv("SHADER_TIMEOUT_SECONDS"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid SHADER_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.TimeoutSeconds = s
	}
	if v := os.Getenv("SHADER_PROMPT_PATH"); v != "" {
		cfg.PromptPath = v
	}
	if v := os.Getenv("SHADER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("SHADER_ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}

	return cfg, nil
}
