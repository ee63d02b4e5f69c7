package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "practice-question",
		Description: "One generated practice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"prompt":     map[string]any{"type": "string"},
				"points":     map[string]any{"type": "integer", "minimum": 0},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			},
			"required": []any{"prompt", "points"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		reject bool
	}{
		{
			name: "complete document",
			raw:  `{"prompt":"What is 3/4 of 8?","points":10,"difficulty":"medium"}`,
		},
		{
			name: "optional field omitted",
			raw:  `{"prompt":"Count to ten.","points":5}`,
		},
		{
			name:   "missing required field",
			raw:    `{"prompt":"Half of 6?"}`,
			reject: true,
		},
		{
			name:   "wrong type",
			raw:    `{"prompt":"Half of 6?","points":"three"}`,
			reject: true,
		},
		{
			name:   "enum violation",
			raw:    `{"prompt":"Half of 6?","points":5,"difficulty":"brutal"}`,
			reject: true,
		},
		{
			name:   "not JSON at all",
			raw:    `Sure! Here is your question:`,
			reject: true,
		},
		{
			name:   "empty output",
			raw:    ``,
			reject: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tt.raw))
			if !tt.reject {
				if err != nil {
					t.Fatalf("validateResponse: %v", err)
				}
				return
			}
			var rejected *ErrInvalidResponse
			if !errors.As(err, &rejected) {
				t.Fatalf("err = %T (%v), want ErrInvalidResponse", err, err)
			}
			if string(rejected.Content) != tt.raw {
				t.Errorf("rejection lost the offending content: %q", rejected.Content)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything, even prose`)); err != nil {
		t.Fatalf("nil schema must accept everything, got: %v", err)
	}
}

func TestValidateResponseNestedDefinition(t *testing.T) {
	schema := &Schema{
		Name: "session-report",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"student": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string"},
					},
					"required": []any{"name"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"student", "scores"},
		},
	}

	ok := json.RawMessage(`{"student":{"name":"Priya"},"scores":[80,95,100]}`)
	if err := validateResponse(schema, ok); err != nil {
		t.Fatalf("valid nested document rejected: %v", err)
	}

	bad := json.RawMessage(`{"student":{"name":"Priya"},"scores":["A","B"]}`)
	if err := validateResponse(schema, bad); err == nil {
		t.Fatal("string scores passed an integer items schema")
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	s := questionSchema()
	for range 3 {
		if err := validateResponse(s, json.RawMessage(`{"prompt":"2+2?","points":1}`)); err != nil {
			t.Fatalf("repeat validation failed: %v", err)
		}
	}
	compiledSchemas.Lock()
	_, cached := compiledSchemas.m[s.Name]
	compiledSchemas.Unlock()
	if !cached {
		t.Error("compiled schema was not cached by name")
	}
}
