package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and tunes the provider used for explanations. Defaults
// come from DefaultConfig; YAML and SLOVO_* variables override them.
type Config struct {
	// Provider is "anthropic", "openai", "gemini", "openrouter" or "mock".
	// Empty means: discover from the standard *_API_KEY variables.
	Provider string `yaml:"provider" env:"SLOVO_LLM_PROVIDER"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds one explanation, retries included.
	Timeout time.Duration `yaml:"timeout" env:"SLOVO_LLM_TIMEOUT"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key" env:"SLOVO_ANTHROPIC_API_KEY"`
	Model  string `yaml:"model"   env:"SLOVO_ANTHROPIC_MODEL"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key" env:"SLOVO_OPENAI_API_KEY"`
	Model  string `yaml:"model"   env:"SLOVO_OPENAI_MODEL"`
	// BaseURL points at an OpenAI-compatible server.
	BaseURL string `yaml:"base_url" env:"SLOVO_OPENAI_BASE_URL"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"SLOVO_GEMINI_API_KEY"`
	Model  string `yaml:"model"   env:"SLOVO_GEMINI_MODEL"`
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"  env:"SLOVO_OPENROUTER_API_KEY"`
	Model   string `yaml:"model"    env:"SLOVO_OPENROUTER_MODEL"`
	BaseURL string `yaml:"base_url" env:"SLOVO_OPENROUTER_BASE_URL"`
}

// RetryConfig bounds retries of transient failures. MaxAttempts of 0 or 1
// sends each request once.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"SLOVO_LLM_RETRY_ATTEMPTS"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns the settings used when nothing overrides them.
// Provider stays empty so that key discovery can run.
func DefaultConfig() Config {
	return Config{
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 20 * time.Second,
	}
}

// keyVars lists the standard key variables in discovery order.
var keyVars = []struct {
	env      string
	provider string
	set      func(*Config, string)
}{
	{"GEMINI_API_KEY", "gemini", func(c *Config, k string) { c.Gemini.APIKey = k }},
	{"OPENAI_API_KEY", "openai", func(c *Config, k string) { c.OpenAI.APIKey = k }},
	{"ANTHROPIC_API_KEY", "anthropic", func(c *Config, k string) { c.Anthropic.APIKey = k }},
	{"OPENROUTER_API_KEY", "openrouter", func(c *Config, k string) { c.OpenRouter.APIKey = k }},
}

// DiscoverConfig selects the first provider whose standard API key variable
// is set. It returns base and false when none is.
func DiscoverConfig(base Config) (Config, bool) {
	for _, kv := range keyVars {
		if k := os.Getenv(kv.env); k != "" {
			cfg := base
			cfg.Provider = kv.provider
			kv.set(&cfg, k)
			return cfg, true
		}
	}
	return base, false
}

// Validate checks that the selected provider can be built.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "mock":
		key = "-"
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	case "openrouter":
		key = c.OpenRouter.APIKey
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("SLOVO_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	if c.Retry.MaxAttempts < 0 {
		return fmt.Errorf("retry.max_attempts must not be negative (got %d)", c.Retry.MaxAttempts)
	}
	return nil
}
