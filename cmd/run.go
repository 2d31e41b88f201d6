package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/slovo/internal/app"
	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/config"
	"github.com/abhisek/slovo/internal/explain"
	"github.com/abhisek/slovo/internal/llm"
	"github.com/abhisek/slovo/internal/session"
	"github.com/abhisek/slovo/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file beside the database.
	logPath := filepath.Join(filepath.Dir(dbPath), "slovo.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	app.NewLogger(cfg.Log, logFile)

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	explainer, err := newExplainer(ctx, cfg, st)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Explanations will be unavailable.")
	}

	slog.Info("starting tui", "db", dbPath, "provider", cfg.LLM.Provider)
	flow := session.New(session.Deps{
		Catalog:   catalog.Default(),
		Explainer: explainer,
	})
	return app.Run(app.Options{Flow: flow})
}

// newExplainer wires provider → gateway → cache. The mock provider has no
// canned answers, so every explanation falls back to the apology text.
func newExplainer(ctx context.Context, cfg *config.Config, st *store.Store) (explain.Gateway, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLM, st.LLMEventRepo())
	if err != nil {
		return nil, err
	}
	gw := explain.NewLLMGateway(provider, explain.Config{
		MaxTokens:   cfg.Explain.MaxTokens,
		Temperature: cfg.Explain.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
	if !cfg.Explain.Cache {
		return gw, nil
	}
	return explain.NewCachedGateway(gw, st.ExplanationRepo(), gw.Model()), nil
}
