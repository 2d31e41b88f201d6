package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/slovo/internal/catalog"
	"github.com/abhisek/slovo/internal/selection"
)

var wordsCmd = newWordsCmd()

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print the words of a pack",
		RunE:  runWords,
	}
	cmd.Flags().StringP("category", "c", "all", "Category: verb, noun, number or all")
	cmd.Flags().IntP("pack", "p", 1, "Pack number, starting at 1")
	cmd.Flags().Bool("shuffle", false, "Shuffle the pack")
	cmd.Flags().Uint64("seed", 0, "Shuffle seed (0 uses the clock)")
	cmd.Flags().Bool("summary", false, "Print word and pack counts per category")
	return cmd
}

func runWords(cmd *cobra.Command, args []string) error {
	c := catalog.Default()
	out := cmd.OutOrStdout()

	if summary, _ := cmd.Flags().GetBool("summary"); summary {
		printSummary(out, c)
		return nil
	}

	catVal, _ := cmd.Flags().GetString("category")
	pack, _ := cmd.Flags().GetInt("pack")
	shuffle, _ := cmd.Flags().GetBool("shuffle")
	seed, _ := cmd.Flags().GetUint64("seed")

	cat, err := catalog.ParseCategory(catVal)
	if err != nil {
		return err
	}
	if pack < 1 {
		return fmt.Errorf("pack must be 1 or more, got %d", pack)
	}

	ordering := selection.Sequential
	if shuffle {
		ordering = selection.Randomized
	}
	words := selection.DeriveActiveSet(c, selection.Config{
		Category:  cat,
		PackIndex: pack - 1,
		Ordering:  ordering,
	}, selection.NewRand(seed))

	fmt.Fprintf(out, "%s · paquet %d (%s)\n", cat.Label(), pack, ordering)
	if len(words) == 0 {
		fmt.Fprintln(out, "Aucun mot dans ce paquet.")
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-20s  %-24s  %-18s  %s\n", "ID", "Russe", "Français", "Phonétique", "Catégorie")
	fmt.Fprintln(out, strings.Repeat("─", 84))
	for _, w := range words {
		fmt.Fprintf(out, "%-5s  %-20s  %-24s  %-18s  %s\n", w.ID, w.Russian, w.French, w.Phonetic, w.Category)
	}
	return nil
}

func printSummary(out io.Writer, c *catalog.Catalog) {
	fmt.Fprintf(out, "%-10s  %6s  %6s\n", "Catégorie", "Mots", "Paquets")
	fmt.Fprintln(out, strings.Repeat("─", 28))
	for _, cat := range append(append([]catalog.Category{}, catalog.Categories...), catalog.CategoryAll) {
		fmt.Fprintf(out, "%-10s  %6d  %6d\n", cat.Label(), c.Count(cat), selection.PackCount(c, cat))
	}
}
