package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SHADER_PORT", "SHADER_GEMINI_API_KEY", "GEMINI_API_KEY",
		"SHADER_GEMINI_MODEL", "SHADER_GEMINI_BASE_URL",
		"SHADER_TIMEOUT_SECONDS", "SHADER_PROMPT_PATH", "SHADER_API_KEY",
		"SHADER_ALLOWED_ORIGIN",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("default port: got %d, want 8080", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("default gemini_model: got %q, want %q", cfg.GeminiModel, "gemini-1.5-flash")
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("default gemini_api_key: got %q, want empty", cfg.GeminiAPIKey)
	}
	if cfg.TimeoutSeconds != 60 {
		t.Errorf("default timeout_seconds: got %d, want 60", cfg.TimeoutSeconds)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("default temperature: got %v, want 0.7", cfg.Temperature)
	}
	if cfg.TopK != 40 {
		t.Errorf("default top_k: got %d, want 40", cfg.TopK)
	}
	if cfg.TopP != 0.95 {
		t.Errorf("default top_p: got %v, want 0.95", cfg.TopP)
	}
	if cfg.MaxOutputTokens != 8192 {
		t.Errorf("default max_output_tokens: got %d, want 8192", cfg.MaxOutputTokens)
	}
	if cfg.PromptPath != "prompts/shader.txt" {
		t.Errorf("default prompt_path: got %q, want %q", cfg.PromptPath, "prompts/shader.txt")
	}
	if cfg.APIKey != "" {
		t.Errorf("default api_key: got %q, want empty", cfg.APIKey)
	}
	if cfg.AllowedOrigin != "*" {
		t.Errorf("default allowed_origin: got %q, want %q", cfg.AllowedOrigin, "*")
	}
}

func TestLoadFromYAML(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	content := `port: 9999
gemini_api_key: "test-key"
gemini_model: "gemini-1.5-pro"
gemini_base_url: "http://localhost:9000"
timeout_seconds: 30
temperature: 0.2
top_k: 10
top_p: 0.5
max_output_tokens: 4096
prompt_path: "/etc/shader/prompt.txt"
api_key: "inbound-secret"
allowed_origin: "https://shaders.example.com"
`
	if err := os.WriteFile(yamlPath, []byte(content), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 9999 {
		t.Errorf("port: got %d, want 9999", cfg.Port)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("gemini_api_key: got %q, want %q", cfg.GeminiAPIKey, "test-key")
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Errorf("gemini_model: got %q, want %q", cfg.GeminiModel, "gemini-1.5-pro")
	}
	if cfg.GeminiBaseURL != "http://localhost:9000" {
		t.Errorf("gemini_base_url: got %q", cfg.GeminiBaseURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("timeout_seconds: got %d, want 30", cfg.TimeoutSeconds)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("temperature: got %v, want 0.2", cfg.Temperature)
	}
	if cfg.APIKey != "inbound-secret" {
		t.Errorf("api_key: got %q, want %q", cfg.APIKey, "inbound-secret")
	}
	if cfg.AllowedOrigin != "https://shaders.example.com" {
		t.Errorf("allowed_origin: got %q", cfg.AllowedOrigin)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHADER_PORT", "7070")
	t.Setenv("SHADER_GEMINI_API_KEY", "env-key")
	t.Setenv("SHADER_GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("SHADER_TIMEOUT_SECONDS", "15")
	t.Setenv("SHADER_API_KEY", "env-inbound")
	t.Setenv("SHADER_ALLOWED_ORIGIN", "https://env.example.com")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != 7070 {
		t.Errorf("port: got %d, want 7070", cfg.Port)
	}
	if cfg.GeminiAPIKey != "env-key" {
		t.Errorf("gemini_api_key: got %q, want %q", cfg.GeminiAPIKey, "env-key")
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("gemini_model: got %q", cfg.GeminiModel)
	}
	if cfg.TimeoutSeconds != 15 {
		t.Errorf("timeout_seconds: got %d, want 15", cfg.TimeoutSeconds)
	}
	if cfg.APIKey != "env-inbound" {
		t.Errorf("api_key: got %q", cfg.APIKey)
	}
	if cfg.AllowedOrigin != "https://env.example.com" {
		t.Errorf("allowed_origin: got %q", cfg.AllowedOrigin)
	}
}

func TestLoadBareGeminiKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "bare-key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GeminiAPIKey != "bare-key" {
		t.Errorf("gemini_api_key: got %q, want %q", cfg.GeminiAPIKey, "bare-key")
	}
}

func TestLoadInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHADER_PORT", "not-a-number")

	if _, err := Load(""); err == nil {
		t.Error("expected error for invalid SHADER_PORT, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}
