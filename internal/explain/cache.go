package explain

import (
	"context"
	"log/slog"

	"github.com/abhisek/slovo/internal/store"
)

// CachedGateway serves repeated explanations from the store. Only
// successful explanations are cached; failures always reach the inner
// gateway on the next request.
type CachedGateway struct {
	inner Gateway
	repo  store.ExplanationRepo
	model string
}

// NewCachedGateway wraps inner with a cache keyed by word, topic and model.
func NewCachedGateway(inner Gateway, repo store.ExplanationRepo, model string) *CachedGateway {
	return &CachedGateway{inner: inner, repo: repo, model: model}
}

func (c *CachedGateway) Explain(ctx context.Context, word, topic string) (string, error) {
	cached, err := c.repo.GetExplanation(ctx, word, topic, c.model)
	if err != nil {
		slog.Warn("explanation cache read failed", "word", word, "error", err)
	} else if cached != nil {
		slog.Debug("explanation cache hit", "word", word, "model", c.model)
		return cached.Text, nil
	}

	text, err := c.inner.Explain(ctx, word, topic)
	if err != nil {
		return "", err
	}

	if err := c.repo.PutExplanation(ctx, store.Explanation{
		Word:    word,
		Context: topic,
		Model:   c.model,
		Text:    text,
	}); err != nil {
		slog.Warn("explanation cache write failed", "word", word, "error", err)
	}
	return text, nil
}
