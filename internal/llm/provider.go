package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction every LLM-backed feature talks to.
// A Request goes in, structured JSON comes out.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the returned Content is JSON that
	// has been validated against that schema. Without a Schema the
	// Content is the raw text wrapped as json.RawMessage.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model identifier this provider targets.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and hard constraints.
	System string

	// Messages is the conversation. SciQuest is single-turn everywhere,
	// so in practice this holds exactly one user message.
	Messages []Message

	// Schema, when non-nil, is the JSON Schema the response must satisfy.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected back from the model.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "topic-lesson".
	// Used as the schema name for OpenAI structured output.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output plus accounting metadata.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
