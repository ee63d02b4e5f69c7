package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sproutedu/sprout/internal/llm"
)

// Config is the full server configuration, assembled from defaults, an
// optional YAML file, and SPROUT_* environment variables (env wins).
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// Addr returns the host:port the server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Path is the SQLite database file. Empty means the XDG default
	// (or SPROUT_DB when set).
	Path string `mapstructure:"path"`

	// SnapshotKeep is how many snapshots to retain per (student, topic)
	// key when pruning.
	SnapshotKeep int `mapstructure:"snapshot_keep"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty logs to stderr only
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// LLMVendor holds credentials and model selection for one provider.
// BaseURL applies to OpenAI-compatible endpoints only.
type LLMVendor struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type LLMConfig struct {
	Provider   string        `mapstructure:"provider"`
	Anthropic  LLMVendor     `mapstructure:"anthropic"`
	OpenAI     LLMVendor     `mapstructure:"openai"`
	Gemini     LLMVendor     `mapstructure:"gemini"`
	OpenRouter LLMVendor     `mapstructure:"openrouter"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// ToLLM maps the section onto the provider package's Config using its
// retry defaults.
func (c LLMConfig) ToLLM() llm.Config {
	cfg := llm.DefaultConfig()
	if c.Provider != "" {
		cfg.Provider = c.Provider
	}
	cfg.Anthropic.APIKey = c.Anthropic.APIKey
	if c.Anthropic.Model != "" {
		cfg.Anthropic.Model = c.Anthropic.Model
	}
	cfg.OpenAI.APIKey = c.OpenAI.APIKey
	if c.OpenAI.Model != "" {
		cfg.OpenAI.Model = c.OpenAI.Model
	}
	cfg.OpenAI.BaseURL = c.OpenAI.BaseURL
	cfg.Gemini.APIKey = c.Gemini.APIKey
	if c.Gemini.Model != "" {
		cfg.Gemini.Model = c.Gemini.Model
	}
	cfg.OpenRouter.APIKey = c.OpenRouter.APIKey
	if c.OpenRouter.Model != "" {
		cfg.OpenRouter.Model = c.OpenRouter.Model
	}
	cfg.OpenRouter.BaseURL = c.OpenRouter.BaseURL
	if c.Timeout > 0 {
		cfg.Timeout = c.Timeout
	}
	return cfg
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Database: DatabaseConfig{
			SnapshotKeep: 5,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		LLM: LLMConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads configuration from the given YAML file path. An empty path
// searches the working directory and the user config dir for
// sprout.yaml and falls back to defaults when none exists; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SPROUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindVendorEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("sprout")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "sprout"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode %q is not one of debug, release, test", c.Server.Mode)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d outside 1..65535", c.Server.Port)
	}
	if c.Database.SnapshotKeep < 1 {
		return fmt.Errorf("database.snapshot_keep must be at least 1, got %d", c.Database.SnapshotKeep)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.allowed_origins", d.Server.AllowedOrigins)

	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.snapshot_keep", d.Database.SnapshotKeep)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)

	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.timeout", d.LLM.Timeout)
}

// bindVendorEnv maps the provider credential keys onto the same
// environment names the llm package documents, so SPROUT_ANTHROPIC_API_KEY
// works with or without a config file.
func bindVendorEnv(v *viper.Viper) {
	v.BindEnv("llm.provider", "SPROUT_LLM_PROVIDER")
	v.BindEnv("llm.anthropic.api_key", "SPROUT_ANTHROPIC_API_KEY")
	v.BindEnv("llm.anthropic.model", "SPROUT_ANTHROPIC_MODEL")
	v.BindEnv("llm.openai.api_key", "SPROUT_OPENAI_API_KEY")
	v.BindEnv("llm.openai.model", "SPROUT_OPENAI_MODEL")
	v.BindEnv("llm.openai.base_url", "SPROUT_OPENAI_BASE_URL")
	v.BindEnv("llm.gemini.api_key", "SPROUT_GEMINI_API_KEY")
	v.BindEnv("llm.gemini.model", "SPROUT_GEMINI_MODEL")
	v.BindEnv("llm.openrouter.api_key", "SPROUT_OPENROUTER_API_KEY")
	v.BindEnv("llm.openrouter.model", "SPROUT_OPENROUTER_MODEL")
	v.BindEnv("llm.openrouter.base_url", "SPROUT_OPENROUTER_BASE_URL")
	v.BindEnv("database.path", "SPROUT_DB", "SPROUT_DATABASE_PATH")
}
