package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/slovo/internal/llm"
)

// ErrEmptyExplanation is returned when the model answers with a blank explanation.
var ErrEmptyExplanation = errors.New("empty explanation")

// LLMGateway explains words through an llm.Provider, one provider call
// per request.
type LLMGateway struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMGateway creates a gateway backed by provider.
func NewLLMGateway(provider llm.Provider, cfg Config) *LLMGateway {
	return &LLMGateway{provider: provider, cfg: cfg}
}

// Model reports the model the gateway asks, used as part of the cache key.
func (g *LLMGateway) Model() string {
	return g.provider.ModelID()
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
	Mnemonic    string `json:"mnemonic"`
	Grammar     string `json:"grammar"`
}

func (g *LLMGateway) Explain(ctx context.Context, word, topic string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		Purpose:      "explain",
		Instructions: systemPrompt,
		Prompt:       buildUserMessage(word, topic),
		Schema:       ExplanationSchema,
		MaxTokens:    g.cfg.MaxTokens,
		Temperature:  g.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("explain %q: %w", word, err)
	}

	out, err := decodeAnswer(resp.Content)
	if err != nil {
		return "", fmt.Errorf("explain %q: %w", word, err)
	}
	if strings.TrimSpace(out.Explanation) == "" {
		return "", ErrEmptyExplanation
	}
	return out.render(), nil
}

func (o explanationOutput) render() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(o.Explanation))
	if m := strings.TrimSpace(o.Mnemonic); m != "" {
		b.WriteString("\n\nAstuce : ")
		b.WriteString(m)
	}
	if gr := strings.TrimSpace(o.Grammar); gr != "" {
		b.WriteString("\n\nGrammaire : ")
		b.WriteString(gr)
	}
	return b.String()
}
