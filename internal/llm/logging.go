package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/slovo/internal/store"
)

// LoggingProvider records every request in the LLM event log.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.LLMEventRepo
}

// WithLogging wraps p. name is the provider kind stored with each event.
func WithLogging(p Provider, name string, events store.LLMEventRepo) *LoggingProvider {
	return &LoggingProvider{inner: p, provider: name, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	ev := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     req.Purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	log := slog.With("provider", l.provider, "model", ev.Model, "purpose", req.Purpose, "latency", latency)
	if err != nil {
		ev.ErrorMessage = err.Error()
		log.Warn("llm request failed", "error", err)
	} else {
		log.Debug("llm request", "input_tokens", ev.InputTokens, "output_tokens", ev.OutputTokens)
	}

	// A timed-out request is still recorded.
	if lerr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); lerr != nil {
		slog.Warn("record llm event", "error", lerr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// transcript renders req the way `slovo llm view` shows it.
func transcript(req Request) string {
	var b strings.Builder
	if req.Instructions != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.Instructions)
	}
	fmt.Fprintf(&b, "[user]\n%s\n", req.Prompt)
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
