package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/config"
	"github.com/abhisek/slovo/internal/store"
)

func TestLookupWord(t *testing.T) {
	c := catalog.Default()

	w, ok := lookupWord(c, "читать")
	require.True(t, ok)
	assert.Equal(t, "v02", w.ID)

	w, ok = lookupWord(c, "v01")
	require.True(t, ok)
	assert.Equal(t, "говорить", w.Russian)

	_, ok = lookupWord(c, "несуществующее")
	assert.False(t, ok)
}

func TestResolveDBPath(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("db", "", "")
		return c
	}

	flagPath := filepath.Join(t.TempDir(), "flag", "a.db")
	c := newCmd()
	require.NoError(t, c.Flags().Set("db", flagPath))
	got, err := resolveDBPath(c, &config.Config{DB: config.DBConfig{Path: "/ignored.db"}})
	require.NoError(t, err)
	assert.Equal(t, flagPath, got)

	cfgPath := filepath.Join(t.TempDir(), "cfg", "b.db")
	got, err = resolveDBPath(newCmd(), &config.Config{DB: config.DBConfig{Path: cfgPath}})
	require.NoError(t, err)
	assert.Equal(t, cfgPath, got)

	t.Setenv("XDG_DATA_HOME", t.TempDir())
	got, err = resolveDBPath(newCmd(), &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "slovo.db", filepath.Base(got))
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"words"}, {"explain"}, {"import"}, {"llm", "list"}, {"llm", "view"},
		{"llm", "stats"}, {"cache", "clear"}, {"version"},
	} {
		c, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], c.Name())
	}
}

func TestWordsCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr string
	}{
		{
			name:    "second verb pack",
			args:    []string{"--category", "verb", "--pack", "2"},
			want:    []string{"Verbes · paquet 2 (sequential)", "v11", "v20"},
			notWant: []string{"v10", "v21"},
		},
		{
			name:    "first pack of all categories",
			args:    []string{"-p", "1"},
			want:    []string{"Mixte · paquet 1", "говорить", "parler"},
			notWant: []string{"v11"},
		},
		{
			name: "pack past the end",
			args: []string{"-c", "number", "-p", "3"},
			want: []string{"Aucun mot dans ce paquet."},
		},
		{
			name: "pack index that would overflow",
			args: []string{"-c", "noun", "-p", "922337203685477582"},
			want: []string{"Aucun mot dans ce paquet."},
		},
		{
			name: "summary",
			args: []string{"--summary"},
			want: []string{"Verbes", "30", "Nombres", "Mixte", "80", "8"},
		},
		{
			name:    "unknown category",
			args:    []string{"-c", "adverb"},
			wantErr: "adverb",
		},
		{
			name:    "pack zero",
			args:    []string{"-p", "0"},
			wantErr: "pack must be 1 or more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newWordsCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			got := out.String()
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, w := range tt.notWant {
				assert.False(t, strings.Contains(got, w), "unexpected %q in:\n%s", w, got)
			}
		})
	}
}

func TestLLMCommands(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	dbPath := filepath.Join(t.TempDir(), "slovo.db")
	t.Setenv("SLOVO_DB", dbPath)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	repo := st.LLMEventRepo()
	ctx := context.Background()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "explain",
		InputTokens: 2000, OutputTokens: 1000, LatencyMs: 800, Success: true,
		RequestBody: "[user]\nExplique le mot \"кот\"", ResponseBody: `{"explanation":"chat"}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "explain",
		LatencyMs: 20000, ErrorMessage: "context deadline exceeded",
	}))
	require.NoError(t, st.Close())

	run := func(args ...string) (string, error) {
		cmd := newLLMCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "gpt-4o-mini")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "context deadline exceeded")

	out, err = run("list", "--failed")
	require.NoError(t, err)
	assert.Contains(t, out, "context deadline exceeded")
	assert.NotContains(t, out, "2000/1000")

	out, err = run("view", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "REQUEST")
	assert.Contains(t, out, "кот")
	assert.Contains(t, out, `{"explanation":"chat"}`)

	_, err = run("view", "99")
	require.Error(t, err)

	out, err = run("stats")
	require.NoError(t, err)
	assert.Contains(t, out, "explain: 2 requests")
	assert.Contains(t, out, "$0.0009")
	assert.NotContains(t, out, "partial")
}
