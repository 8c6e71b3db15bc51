package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Provider identifies which AI backend answers identify/estimate/chat calls.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// Config is the top-level recyclink configuration.
type Config struct {
	Port            string        `yaml:"port" koanf:"port"`
	Provider        string        `yaml:"provider" koanf:"provider"`
	Model           string        `yaml:"model" koanf:"model"`
	MockDelay       time.Duration `yaml:"mock_delay" koanf:"mock_delay"`
	ContactDelay    time.Duration `yaml:"contact_delay" koanf:"contact_delay"`
	SessionTTL      time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
	ContentFile     string        `yaml:"content_file" koanf:"content_file"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Port:         "8888",
		Provider:     ProviderGemini,
		Model:        "gemini-2.5-flash",
		MockDelay:    time.Second,
		ContactDelay: 1500 * time.Millisecond,
		SessionTTL:   30 * time.Minute,
	}
}

// Load reads configuration from the given YAML file if it exists, then
// overlays environment variable overrides (RECYCLINK_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// Overlay environment variables: RECYCLINK_PROVIDER -> provider, etc.
	if err := k.Load(env.Provider("RECYCLINK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "RECYCLINK_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[string]bool{
	ProviderGemini: true,
	ProviderOpenAI: true,
	ProviderMock:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of gemini, openai, mock", c.Provider)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("contact_delay must be non-negative")
	}
	if c.MockDelay < 0 {
		return fmt.Errorf("mock_delay must be non-negative")
	}
	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider string) string {
	switch provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}
