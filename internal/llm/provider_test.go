package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_RepliesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockReply{JSON: `{"a":1}`, Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockReply{Err: &Error{Kind: RateLimited}},
	)

	resp, err := mock.Generate(context.Background(), Request{Instructions: "sys", Prompt: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"a":1}` || resp.Usage.InputTokens != 10 || resp.Model != MockModel {
		t.Fatalf("unexpected response %+v", resp)
	}

	if _, err := mock.Generate(context.Background(), Request{Prompt: "second"}); err == nil {
		t.Fatal("expected scripted error")
	}
	// Out of replies: an unconfigured install must fail so the fallback shows.
	_, err = mock.Generate(context.Background(), Request{})
	if kind, ok := KindOf(err); !ok || kind != Unavailable {
		t.Fatalf("expected Unavailable, got %v", err)
	}

	if mock.CallCount() != 3 || mock.Calls[0].Instructions != "sys" || mock.Calls[1].Prompt != "second" {
		t.Fatalf("calls not recorded: %+v", mock.Calls)
	}
}

func TestError(t *testing.T) {
	inner := errors.New("boom")
	err := error(&Error{Kind: RateLimited, Err: inner})

	if !errors.Is(err, inner) {
		t.Fatal("Error should unwrap to its cause")
	}
	if err.Error() != "llm: rate limited: boom" {
		t.Fatalf("message = %q", err.Error())
	}
	if (&Error{Kind: Truncated}).Error() != "llm: truncated" {
		t.Fatal("message without cause")
	}
	if _, ok := KindOf(inner); ok {
		t.Fatal("plain errors have no kind")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, "SLOVO_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk"}}, ""},
		{"openai without key", Config{Provider: "openai"}, "SLOVO_OPENAI_API_KEY"},
		{"openrouter without key", Config{Provider: "openrouter"}, "SLOVO_OPENROUTER_API_KEY"},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g"}}, ""},
		{"mock needs no key", Config{Provider: "mock"}, ""},
		{"negative retry attempts", Config{Provider: "mock", Retry: RetryConfig{MaxAttempts: -1}}, "max_attempts"},
		{"empty provider", Config{}, "unknown LLM provider"},
		{"unknown provider", Config{Provider: "acme"}, "unknown LLM provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, kv := range keyVars {
		t.Setenv(kv.env, "")
	}

	base := DefaultConfig()
	if _, ok := DiscoverConfig(base); ok {
		t.Fatal("expected no provider without keys")
	}

	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok := DiscoverConfig(base)
	if !ok || cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-openai" {
		t.Fatalf("expected openai to win over anthropic, got %q", cfg.Provider)
	}
	if cfg.OpenAI.Model != base.OpenAI.Model || base.OpenAI.APIKey != "" {
		t.Fatal("discovery must keep base models and leave base untouched")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	if cfg, _ = DiscoverConfig(base); cfg.Provider != "gemini" {
		t.Fatalf("expected gemini first, got %q", cfg.Provider)
	}
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil || p.ModelID() != MockModel {
		t.Fatalf("mock provider: %v %v", p, err)
	}

	if _, err := NewProvider(context.Background(), Config{Provider: "nope"}, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}

	cfg := Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"}}
	p, err = NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*OpenAIProvider); !ok {
		t.Fatalf("single attempt without events should be bare, got %T", p)
	}

	cfg.Retry = RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 2}
	p, err = NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*RetryProvider); !ok {
		t.Fatalf("expected *RetryProvider, got %T", p)
	}
}

func TestModels(t *testing.T) {
	for alias, want := range map[string]string{
		"claude-haiku":     "claude-haiku-4-5-20251001",
		"gemini-flash":     "gemini-2.0-flash",
		"gpt-4o-mini":      "gpt-4o-mini",
		"some/custom-slug": "some/custom-slug",
	} {
		if got := resolveModel(alias); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", alias, got, want)
		}
	}

	c, ok := LookupCost("gpt-4o-mini")
	if !ok {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if got := c.Cost(Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}); got < 0.749 || got > 0.751 {
		t.Fatalf("cost = %f, want 0.75", got)
	}
	if _, ok := LookupCost("no-such-model"); ok {
		t.Fatal("expected no pricing for unknown model")
	}
}
