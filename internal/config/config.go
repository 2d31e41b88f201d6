package config

import "github.com/abhisek/slovo/internal/llm"

// Config is the root configuration structure for slovo.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	DB      DBConfig      `yaml:"db"`
	LLM     llm.Config    `yaml:"llm"`
	Explain ExplainConfig `yaml:"explain"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SLOVO_LOG_LEVEL"`
	Format string `yaml:"format" env:"SLOVO_LOG_FORMAT"`
}

// DBConfig holds the local database location. An empty Path means the
// XDG data directory.
type DBConfig struct {
	Path string `yaml:"path" env:"SLOVO_DB"`
}

// ExplainConfig tunes the word explanation requests.
type ExplainConfig struct {
	MaxTokens   int     `yaml:"max_tokens"  env:"SLOVO_EXPLAIN_MAX_TOKENS"`
	Temperature float64 `yaml:"temperature" env:"SLOVO_EXPLAIN_TEMPERATURE"`
	Cache       bool    `yaml:"cache"       env:"SLOVO_EXPLAIN_CACHE"`
}

// Default returns the configuration that YAML and the environment override.
// Defaults live here and not in env-default tags: cleanenv reapplies a tag
// default over any zero value, which would undo "cache: false" or
// "temperature: 0" from YAML.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		LLM: llm.DefaultConfig(),
		Explain: ExplainConfig{
			MaxTokens:   400,
			Temperature: 0.7,
			Cache:       true,
		},
	}
}
