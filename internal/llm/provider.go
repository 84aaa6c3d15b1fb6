// Package llm wraps the generative-text collaborator: free-form text
// generation used to author study plans and explanations. The engine
// never depends on the output semantically, and no error from this
// package may touch scheduling or mastery state.
package llm

import "context"

// Provider is the core abstraction for text generation.
type Provider interface {
	// Generate sends a prompt and returns the generated text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider uses.
	ModelID() string
}

// Request describes what to send to the text service.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user prompt for single-turn generation.
	Prompt string

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means
	// deterministic.
	Temperature float64
}

// Response holds the generated output.
type Response struct {
	// Text is the free-form generated text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the concrete model that served the request.
	Model string
}

// Usage reports token counts for one generation call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
