// Package llm sends single-turn, schema-constrained prompts to a hosted
// model and returns the JSON it produced.
package llm

import (
	"context"
	"encoding/json"
)

// Provider answers one prompt.
type Provider interface {
	// Generate sends req and returns the model's JSON. Failures are *Error
	// values, except context errors which pass through as-is.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model requests are sent to.
	ModelID() string
}

// Request is a single prompt with its system instructions. slovo never
// holds a conversation, so there is exactly one user turn.
type Request struct {
	// Purpose labels the request in the event log, e.g. "explain".
	Purpose string

	Instructions string
	Prompt       string

	// Schema constrains the answer through the provider's structured
	// output feature. Callers validate the returned JSON themselves.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Schema is a named JSON Schema document.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Response is a successful answer.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string
}

// Usage counts the tokens billed for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
