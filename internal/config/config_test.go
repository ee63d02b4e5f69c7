package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sprout.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault_PassesValidation(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("mode = %q, want release", cfg.Server.Mode)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Database.SnapshotKeep != 5 {
		t.Errorf("snapshot keep = %d, want 5", cfg.Database.SnapshotKeep)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9999
  mode: debug
  read_timeout: 20s
log:
  level: debug
  file: /tmp/sprout-test.log
llm:
  provider: mock
database:
  path: /tmp/sprout-test.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 20*time.Second {
		t.Errorf("read timeout = %v, want 20s", cfg.Server.ReadTimeout)
	}
	// Unset keys keep their defaults.
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("write timeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}
	if cfg.LLM.Provider != "mock" {
		t.Errorf("provider = %q, want mock", cfg.LLM.Provider)
	}
	if cfg.Database.Path != "/tmp/sprout-test.db" {
		t.Errorf("db path = %q", cfg.Database.Path)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9999
`)
	t.Setenv("SPROUT_SERVER_PORT", "7777")
	t.Setenv("SPROUT_ANTHROPIC_API_KEY", "sk-test-key")
	t.Setenv("SPROUT_LLM_PROVIDER", "anthropic")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d, want env override 7777", cfg.Server.Port)
	}
	if cfg.LLM.Anthropic.APIKey != "sk-test-key" {
		t.Errorf("api key = %q, want sk-test-key", cfg.LLM.Anthropic.APIKey)
	}
	if cfg.LLM.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.LLM.Provider)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad mode",
			yaml:    "server:\n  mode: production\n",
			wantErr: "server.mode",
		},
		{
			name:    "bad port",
			yaml:    "server:\n  port: 0\n",
			wantErr: "server.port",
		},
		{
			name:    "bad log level",
			yaml:    "log:\n  level: verbose\n",
			wantErr: "log.level",
		},
		{
			name:    "bad snapshot keep",
			yaml:    "database:\n  snapshot_keep: 0\n",
			wantErr: "snapshot_keep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLLMConfig_ToLLM(t *testing.T) {
	section := LLMConfig{
		Provider:  "openai",
		OpenAI:    LLMVendor{APIKey: "sk-oa", Model: "gpt-4o"},
		Anthropic: LLMVendor{APIKey: "sk-an"},
		Timeout:   45 * time.Second,
	}

	got := section.ToLLM()
	if got.Provider != "openai" {
		t.Errorf("provider = %q, want openai", got.Provider)
	}
	if got.OpenAI.APIKey != "sk-oa" || got.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai = %+v", got.OpenAI)
	}
	// Models left empty fall back to the provider package defaults.
	if got.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q, want claude-haiku", got.Anthropic.Model)
	}
	if got.Timeout != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", got.Timeout)
	}
	if got.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want default 3", got.Retry.MaxAttempts)
	}
}

func TestLLMConfig_ToLLM_ZeroValueUsesDefaults(t *testing.T) {
	got := LLMConfig{}.ToLLM()
	if got.Provider != "anthropic" {
		t.Errorf("provider = %q, want default anthropic", got.Provider)
	}
	if got.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want default 30s", got.Timeout)
	}
}
