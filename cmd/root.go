package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/slovo/internal/config"
	"github.com/abhisek/slovo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "slovo",
	Short: "Russian-French vocabulary trainer",
	Long:  "Slovo: terminal flashcards and quizzes for Russian vocabulary, with short AI explanations in French.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SLOVO_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides SLOVO_CONFIG env var)")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration from the --config flag, SLOVO_CONFIG or
// ./slovo.yaml, with environment overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (SLOVO_DB), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

// openStore loads configuration and opens the database it points to.
func openStore(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, st, nil
}
