package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MdSadiqMd/Text-to-Shader/internal/adapter"
	"github.com/MdSadiqMd/Text-to-Shader/internal/config"
	"github.com/MdSadiqMd/Text-to-Shader/internal/logging"
	"github.com/MdSadiqMd/Text-to-Shader/internal/server"
	"github.com/MdSadiqMd/Text-to-Shader/internal/shader"
)

// defaultSystemPrompt is used when no prompt file is configured or the
// configured file cannot be read.
const defaultSystemPrompt = `You are an expert GLSL shader developer. Given a natural-language
description, write a WebGL vertex shader and fragment shader.

Respond ONLY with a JSON object of this exact shape, no prose before or
after it:

{"vertexShader": "<GLSL source>", "fragmentShader": "<GLSL source>"}

The vertex shader must use the a_position attribute. The fragment shader
may use the u_time (seconds) and u_resolution (pixels) uniforms.`

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of the Gemini backend")
	port := flag.Int("port", 0, "override listen port")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Port = *port
	}

	logger, err := logging.New(*verbose || cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	systemPrompt := loadSystemPrompt(cfg.PromptPath, logger)
	active, adapters, models := buildAdapters(cfg, *useMock, logger)

	if cfg.APIKey != "" {
		logger.Info("auth enabled", zap.String("header", "X-API-Key"))
	} else {
		logger.Info("auth disabled (no api_key configured)")
	}

	handler := server.SetupMux(server.Options{
		Active:        active,
		Adapters:      adapters,
		Models:        models,
		Normalizer:    shader.NewNormalizer(shader.StandardDefaults()),
		SystemPrompt:  systemPrompt,
		APIKey:        cfg.APIKey,
		AllowedOrigin: cfg.AllowedOrigin,
		Timeout:       time.Duration(cfg.TimeoutSeconds+5) * time.Second,
		Logger:        logger,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("text-to-shader api listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func loadSystemPrompt(path string, logger *zap.Logger) string {
	if path == "" {
		return defaultSystemPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("prompt file unreadable, using built-in prompt",
			zap.String("path", path), zap.Error(err))
		return defaultSystemPrompt
	}
	return string(data)
}

func buildAdapters(cfg config.Config, useMock bool, logger *zap.Logger) (adapter.LLMAdapter, map[string]adapter.LLMAdapter, []adapter.ModelInfo) {
	adapters := make(map[string]adapter.LLMAdapter)
	var models []adapter.ModelInfo

	if useMock {
		mock := &adapter.MockAdapter{Delay: 500 * time.Millisecond}
		adapters["mock"] = mock
		models = append(models, adapter.ModelInfo{ID: "mock", Name: "Mock (dev)", Provider: "mock"})
		logger.Info("mode: mock adapter enabled")
		return mock, adapters, models
	}

	gemini := &adapter.GeminiAdapter{
		BaseURL: cfg.GeminiBaseURL,
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Options: adapter.GenerationOptions{
			Temperature:     cfg.Temperature,
			TopK:            cfg.TopK,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
		Client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
	adapters[cfg.GeminiModel] = gemini
	models = append(models, adapter.ModelInfo{ID: cfg.GeminiModel, Name: "Gemini (" + cfg.GeminiModel + ")", Provider: "gemini"})
	logger.Info("mode: gemini",
		zap.String("model", cfg.GeminiModel),
		zap.Bool("api_key_set", cfg.GeminiAPIKey != ""))

	return gemini, adapters, models
}
