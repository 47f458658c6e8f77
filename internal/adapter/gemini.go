package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GenerationOptions are passed through to the provider's generationConfig.
type GenerationOptions struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// GeminiAdapter connects to the Gemini generateContent API.
type GeminiAdapter struct {
	BaseURL string
	APIKey  string
	Model   string
	Options GenerationOptions
	Client  *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiGenerateRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func (g *GeminiAdapter) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.Model)
}

// Generate sends the prompt to generateContent and returns the first
// candidate's text. It fails only on credential, transport, HTTP, or
// envelope-shape problems; making sense of the returned text is the
// shader package's job.
func (g *GeminiAdapter) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("gemini: API key not configured")
	}

	reqBody := geminiGenerateRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     g.Options.Temperature,
			TopK:            g.Options.TopK,
			TopP:            g.Options.TopP,
			MaxOutputTokens: g.Options.MaxOutputTokens,
		},
	}
	if systemPrompt != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	baseURL := g.BaseURL
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(baseURL, "/"), g.Model, g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var genResp geminiGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if genResp.Error != nil {
		return "", fmt.Errorf("gemini: API error: %s", genResp.Error.Message)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no completion returned")
	}

	var result strings.Builder
	for _, part := range genResp.Candidates[0].Content.Parts {
		result.WriteString(part.Text)
	}

	text := strings.TrimSpace(result.String())
	if text == "" {
		return "", fmt.Errorf("gemini: empty completion text")
	}
	return text, nil
}

func (g *GeminiAdapter) Available() bool {
	return g.APIKey != ""
}
