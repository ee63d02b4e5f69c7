package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
		wantID  string
	}{
		{
			name:    "missing API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			name:   "default base URL",
			cfg:    OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantID: "google/gemini-2.0-flash-exp",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "meta-llama/llama-3-8b",
				BaseURL: "https://proxy.internal/v1",
			},
			wantID: "meta-llama/llama-3-8b",
		},
		{
			name:   "vendor-prefixed IDs pass through unmapped",
			cfg:    OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			wantID: "anthropic/claude-3-haiku",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("constructor accepted the config")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOpenRouterProvider: %v", err)
			}
			if p.ModelID() != tt.wantID {
				t.Errorf("ModelID = %q, want %q", p.ModelID(), tt.wantID)
			}
		})
	}
}
