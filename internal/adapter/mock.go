package adapter

import (
	"context"
	"fmt"
	"time"
)

const mockEnvelope = `{"vertexShader": "attribute vec4 a_position;\nvoid main() { gl_Position = a_position; }", "fragmentShader": "precision mediump float;\nvoid main() { gl_FragColor = vec4(0.2, 0.4, 0.8, 1.0); }"}`

// MockAdapter returns a canned JSON shader envelope after an optional
// delay. Used for development and testing without a real LLM backend.
type MockAdapter struct {
	Delay    time.Duration
	Response string
}

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	if m.Response != "" {
		return m.Response, nil
	}
	return mockEnvelope, nil
}

func (m *MockAdapter) Available() bool { return true }
