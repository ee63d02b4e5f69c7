package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/sproutedu/sprout/internal/config"
)

func TestNew_ConsoleOnly(t *testing.T) {
	log, err := New(config.LogConfig{Level: "info"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer log.Sync()

	log.Info("started")
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info level to be enabled")
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be disabled at info")
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprout.log")
	log, err := New(config.LogConfig{Level: "debug", File: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	log.Info("session started")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file missing entry: %s", data)
	}
	if !strings.Contains(string(data), `"level":"INFO"`) {
		t.Errorf("expected JSON encoding in file: %s", data)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "noisy"})
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
	if !strings.Contains(err.Error(), `"noisy"`) {
		t.Errorf("unexpected error: %v", err)
	}
}
