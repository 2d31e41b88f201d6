package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/slovo/internal/app"
	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/explain"
)

var explainCmd = &cobra.Command{
	Use:   "explain <word>",
	Short: "Explain a Russian word in French",
	Long: `Ask the configured LLM provider for a short French explanation of a word.

The word is looked up in the catalog by Russian text or ID. Words outside the
catalog are explained with whatever --context is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		app.NewLogger(cfg.Log, cmd.ErrOrStderr())

		topic, _ := cmd.Flags().GetString("context")
		word := strings.TrimSpace(args[0])
		if w, ok := lookupWord(catalog.Default(), word); ok {
			word = w.Russian
			if topic == "" {
				topic = explain.Topic(w)
			}
		}

		gw, err := newExplainer(cmd.Context(), cfg, st)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), explain.Resolve(cmd.Context(), gw, word, topic))
		return nil
	},
}

func lookupWord(c *catalog.Catalog, s string) (catalog.Word, bool) {
	if w, ok := c.FindRussian(s); ok {
		return w, true
	}
	return c.ByID(s)
}

func init() {
	explainCmd.Flags().String("context", "", "Context for the word, e.g. its translation")
}
