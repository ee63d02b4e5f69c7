package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct{ in, want string }{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "One practice question",
		"properties": map[string]any{
			"prompt":     map[string]any{"type": "string"},
			"points":     map[string]any{"type": "integer"},
			"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"prompt", "points"},
	}

	schema := geminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("Type = %v, want object", schema.Type)
	}
	if schema.Description != "One practice question" {
		t.Errorf("Description = %q", schema.Description)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["prompt"].Type != genai.TypeString {
		t.Errorf("prompt type = %v", schema.Properties["prompt"].Type)
	}
	if schema.Properties["points"].Type != genai.TypeInteger {
		t.Errorf("points type = %v", schema.Properties["points"].Type)
	}
	if got := schema.Properties["difficulty"].Enum; len(got) != 3 {
		t.Errorf("difficulty enum = %v, want 3 values", got)
	}
	if schema.Properties["choices"].Items == nil || schema.Properties["choices"].Items.Type != genai.TypeString {
		t.Errorf("choices items = %+v, want string items", schema.Properties["choices"].Items)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v, want 2 names", schema.Required)
	}
}

func TestGeminiTypeFallback(t *testing.T) {
	if got := geminiType("null"); got != genai.TypeString {
		t.Errorf("geminiType(null) = %v, want the string fallback", got)
	}
}

func TestGeminiStopNormalization(t *testing.T) {
	natural := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "STOP"}},
	}
	if got := geminiStop(natural); got != "end" {
		t.Errorf("STOP = %q, want end", got)
	}

	filtered := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "SAFETY"}},
	}
	if got := geminiStop(filtered); got != "safety" {
		t.Errorf("SAFETY = %q, want safety", got)
	}

	empty := &genai.GenerateContentResponse{}
	if got := geminiStop(empty); got != "end" {
		t.Errorf("no candidates = %q, want end", got)
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("constructor accepted an empty API key")
	}
}
