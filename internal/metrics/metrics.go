package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shader_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerateDuration tracks outbound LLM call latency per model.
	GenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shader_generate_duration_seconds",
		Help:    "Time spent on shader generation calls.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"model"})

	// PromptChars tracks the distribution of prompt lengths.
	PromptChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shader_prompt_chars",
		Help:    "Number of characters in generation prompts.",
		Buckets: []float64{25, 50, 100, 250, 500, 1000, 2000, 4000},
	})

	// NormalizeTier counts which fallback tier produced each shader pair.
	NormalizeTier = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shader_normalize_tier_total",
		Help: "Shader pairs produced per extraction tier (json, regex, default).",
	}, []string{"tier"})

	// AdapterAvailable tracks whether each adapter is usable.
	AdapterAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "shader_adapter_available",
		Help: "Whether an LLM adapter is available (1) or not (0).",
	}, []string{"adapter"})
)
