package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/slovo/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Convert a spreadsheet word list to catalog YAML",
	Long: `Read words from an .xlsx or .csv file and write them as catalog YAML.

Columns default to A=russian, B=french, C=phonetic, D=category, E=example,
with one header row. The result is validated before it is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		icfg := catalog.DefaultImportConfig()
		icfg.Path = args[0]
		icfg.SheetName, _ = cmd.Flags().GetString("sheet")
		icfg.StartRow, _ = cmd.Flags().GetInt("start-row")

		if catVal, _ := cmd.Flags().GetString("category"); catVal != "" {
			cat, err := catalog.ParseCategory(catVal)
			if err != nil {
				return err
			}
			if cat == catalog.CategoryAll {
				return fmt.Errorf("--category must be verb, noun or number")
			}
			icfg.Category = cat
		}

		res, err := catalog.ImportFile(icfg)
		if err != nil {
			return fmt.Errorf("import %s: %w", icfg.Path, err)
		}
		for _, e := range res.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "skipped", e)
		}
		if _, err := catalog.New(res.Words); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()
			out = f
		}
		if err := catalog.WriteYAML(out, res.Words); err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%d words imported, %d rows skipped\n", len(res.Words), res.Skipped)
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "Sheet name (defaults to the first sheet)")
	importCmd.Flags().Int("start-row", 2, "First data row, 1-based")
	importCmd.Flags().String("category", "", "Category for rows without one: verb, noun or number")
	importCmd.Flags().StringP("output", "o", "", "Write YAML to this file instead of stdout")
}
