// Package generator asks a chat-completion model to draft README content
// from fetched repository data and parses its constrained JSON replies.
package generator

import "context"

// LLMClient abstracts the completion backend so it can be mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the configuration a concrete client needs.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}

// Prompt is one request to the model. Temperature and TopP are forwarded
// only when non-zero.
type Prompt struct {
	System      string
	User        string
	Temperature float64
	TopP        float64
}
