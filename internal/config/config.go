// Package config provides configuration management for the LockedIn client.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Backend     BackendConfig `mapstructure:"backend"`
	Chat        ChatConfig    `mapstructure:"chat"`
	Cache       CacheConfig   `mapstructure:"cache"`
	UI          UIConfig      `mapstructure:"ui"`
	Credentials Credentials   `mapstructure:"-"` // Loaded separately
}

// BackendConfig holds the LockedIn backend connection settings.
type BackendConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// ChatConfig holds the chat assistant settings.
type ChatConfig struct {
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds the session cache settings.
type CacheConfig struct {
	TTLMinutes int    `mapstructure:"ttl_minutes"`
	Path       string `mapstructure:"path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// Credentials holds API credentials.
type Credentials struct {
	Groq GroqCredentials `mapstructure:"groq"`
}

// GroqCredentials holds the chat provider API key.
type GroqCredentials struct {
	APIKey string `mapstructure:"api_key"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/lockedin"
	}
	return filepath.Join(home, ".config", "lockedin")
}

// DefaultCachePath returns the default session cache database path.
func DefaultCachePath() string {
	return filepath.Join(DefaultConfigDir(), "session.db")
}

// DirFromArgs extracts a --config value from raw command-line arguments.
// The root command declares the flag, but configuration must be loaded
// before the command tree is built, so the value is scanned up front.
// Returns empty when the flag is absent.
func DirFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--config" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	// A .env in the working directory can carry the API key.
	_ = godotenv.Load()

	cfg := &Config{}

	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := loadCredentials(configDir, &cfg.Credentials); err != nil {
		return nil, fmt.Errorf("loading credentials.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("backend.base_url", "http://localhost:8080/api")
	v.SetDefault("chat.model", "llama-3.3-70b-versatile")
	v.SetDefault("chat.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("cache.ttl_minutes", 5)
	v.SetDefault("cache.path", DefaultCachePath())
	v.SetDefault("ui.color_enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createTemplateConfig(configDir); err != nil {
				return err
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func loadCredentials(configDir string, creds *Credentials) error {
	v := viper.New()
	v.SetConfigName("credentials")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createTemplateCredentials(configDir)
		}
		return err
	}

	return v.Unmarshal(creds)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOCKEDIN_API_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("LOCKEDIN_CHAT_MODEL"); v != "" {
		cfg.Chat.Model = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.Credentials.Groq.APIKey = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url must not be empty")
	}
	if _, err := url.Parse(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("backend.base_url is not a valid URL: %w", err)
	}
	if c.Cache.TTLMinutes < 0 {
		return fmt.Errorf("cache.ttl_minutes must be non-negative")
	}
	return nil
}

// TTL returns the session cache TTL as a duration.
func (c *Config) TTL() time.Duration {
	if c.Cache.TTLMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}

// HasChatKey reports whether a chat provider key is configured.
func (c *Config) HasChatKey() bool {
	return c.Credentials.Groq.APIKey != ""
}
