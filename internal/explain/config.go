package explain

import "time"

// Config holds explanation request settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one explanation request. Zero means no extra bound
	// beyond the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for explanation requests.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.7,
		Timeout:     20 * time.Second,
	}
}
