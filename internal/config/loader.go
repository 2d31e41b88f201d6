package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/abhisek/slovo/internal/llm"
)

// DefaultFile is read when no path is given and SLOVO_CONFIG is unset.
const DefaultFile = "./slovo.yaml"

// Load reads configuration from an optional YAML file and environment variables.
// Priority: ENV > YAML > Default().
//
// A .env file in the working directory is loaded first when present.
// The YAML path is path, else SLOVO_CONFIG, else DefaultFile. An explicit
// path that does not exist is an error; a missing DefaultFile is not.
//
// When no LLM provider is configured, the standard *_API_KEY variables are
// checked; without any key the mock provider is used and every explanation
// resolves to the fallback text.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := Default()

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("SLOVO_CONFIG")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if cfg.LLM.Provider == "" {
		if discovered, ok := llm.DiscoverConfig(cfg.LLM); ok {
			cfg.LLM = discovered
		} else {
			slog.Debug("no LLM API key found, explanations disabled")
			cfg.LLM.Provider = "mock"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
