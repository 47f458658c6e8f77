package adapter

import "context"

// LLMAdapter defines the contract for text-completion backends.
type LLMAdapter interface {
	Name() string
	Generate(ctx context.Context, prompt, systemPrompt string) (string, error)
	Available() bool
}

// ModelInfo is exposed via GET /api/models.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}
