package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MdSadiqMd/Text-to-Shader/internal/adapter"
	"github.com/MdSadiqMd/Text-to-Shader/internal/handler"
	"github.com/MdSadiqMd/Text-to-Shader/internal/middleware"
	"github.com/MdSadiqMd/Text-to-Shader/internal/shader"
)

// Options carries everything needed to wire the HTTP surface.
type Options struct {
	Active        adapter.LLMAdapter
	Adapters      map[string]adapter.LLMAdapter
	Models        []adapter.ModelInfo
	Normalizer    *shader.Normalizer
	SystemPrompt  string
	APIKey        string
	AllowedOrigin string
	Timeout       time.Duration
	Logger        *zap.Logger
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(opts Options) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 65 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health(opts.Adapters))
	mux.HandleFunc("/api/models", handler.Models(opts.Models))
	mux.HandleFunc("/api/generate-shader", handler.GenerateShader(opts.Active, opts.Normalizer, opts.SystemPrompt))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", handler.NotFound())

	rl := middleware.NewRateLimiter(10, time.Minute)
	return middleware.Chain(mux, opts.Logger, rl, opts.APIKey, opts.AllowedOrigin, opts.Timeout)
}
