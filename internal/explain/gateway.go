// Package explain produces short French explanations of Russian words.
package explain

import (
	"context"
	"log/slog"
	"strings"
)

// FallbackText is shown whenever an explanation cannot be produced.
const FallbackText = "Désolé, je ne peux pas fournir d'explication pour le moment."

// Gateway explains a word given a short context (translation, category).
// Implementations may fail; callers go through Resolve.
type Gateway interface {
	Explain(ctx context.Context, word, topic string) (string, error)
}

// Resolve asks g for an explanation and never fails: a nil gateway, an
// error or an empty answer all yield FallbackText.
func Resolve(ctx context.Context, g Gateway, word, topic string) string {
	if g == nil {
		return FallbackText
	}

	text, err := g.Explain(ctx, word, topic)
	if err != nil {
		slog.Warn("explanation unavailable", "word", word, "error", err)
		return FallbackText
	}

	text = strings.TrimSpace(text)
	if text == "" {
		slog.Warn("explanation empty", "word", word)
		return FallbackText
	}
	return text
}

// GatewayFunc adapts a function to the Gateway interface.
type GatewayFunc func(ctx context.Context, word, topic string) (string, error)

// Explain calls f.
func (f GatewayFunc) Explain(ctx context.Context, word, topic string) (string, error) {
	return f(ctx, word, topic)
}
