package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a remote generation backend.
// The analysis engine talks to it exclusively through Generate; which
// vendor sits behind it is a construction-time decision.
type Provider interface {
	// Generate sends a prompt and returns the model's output. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and validates the returned JSON against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Transcript analysis is single-turn,
	// so this is normally one user message carrying the transcript.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero value means
	// provider default (deterministic).
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI), e.g. "session_analysis".
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. With a Schema it is the
	// schema-validated JSON object; without, the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
