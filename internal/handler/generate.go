package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MdSadiqMd/Text-to-Shader/internal/adapter"
	"github.com/MdSadiqMd/Text-to-Shader/internal/metrics"
	"github.com/MdSadiqMd/Text-to-Shader/internal/shader"
)

const maxPromptLength = 4000

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Success        bool   `json:"success"`
	VertexShader   string `json:"vertexShader"`
	FragmentShader string `json:"fragmentShader"`
	ShaderCode     string `json:"shaderCode"`
}

// GenerateShader handles POST /api/generate-shader. The LLM call is the
// only operation that can fail the request; once its text arrives, the
// normalizer always produces a renderable pair.
func GenerateShader(a adapter.LLMAdapter, n *shader.Normalizer, systemPrompt string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if req.Prompt == "" {
			writeError(w, http.StatusBadRequest, "prompt is required")
			return
		}
		if len(req.Prompt) > maxPromptLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("prompt too long: %d characters (max %d)", len(req.Prompt), maxPromptLength))
			return
		}

		metrics.PromptChars.Observe(float64(len(req.Prompt)))

		start := time.Now()
		text, err := a.Generate(r.Context(), req.Prompt, systemPrompt)
		metrics.GenerateDuration.WithLabelValues(a.Name()).Observe(time.Since(start).Seconds())

		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("shader generation failed: %v", err))
			return
		}

		pair, tier := n.Normalize(text)
		metrics.NormalizeTier.WithLabelValues(string(tier)).Inc()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(generateResponse{
			Success:        true,
			VertexShader:   pair.Vertex,
			FragmentShader: pair.Fragment,
			ShaderCode:     "// Vertex Shader\n" + pair.Vertex + "\n\n// Fragment Shader\n" + pair.Fragment,
		})
	}
}
