// Package llm abstracts the hosted model APIs the engine generates
// questions through. Callers build a Request, pick a Provider via
// NewProvider, and get schema-validated JSON back; which vendor serves
// it is configuration.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one configured model backend. Implementations are safe
// for concurrent use.
type Provider interface {
	// Generate runs one completion. With req.Schema set the returned
	// Content is JSON already validated against it; without a schema
	// Content is the raw text encoded as a JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the model requests are sent to.
	ModelID() string
}

// Role marks who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Request is a single completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the turn history. Question generation sends exactly
	// one user message.
	Messages []Message

	// Schema, when set, makes the provider request structured output
	// and the response is validated against it before being returned.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Schema is a JSON Schema the response must satisfy. Name doubles as
// the tool name (Anthropic) and response-format name (OpenAI), so keep
// it kebab-case.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is what came back.
type Response struct {
	Content json.RawMessage

	// Usage is this request's token consumption as reported by the
	// vendor.
	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured alias.
	Model string

	// StopReason is why generation ended: "end" for a natural stop,
	// otherwise the vendor's reason. Truncation at the token cap
	// surfaces as *ErrMaxTokensExceeded, not here.
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel expands a configured shorthand into the vendor's model
// ID. Names outside the alias table pass through, so exact IDs always
// work.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
