package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached explanations",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached explanation",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ExplanationRepo().ClearExplanations(context.Background())
		if err != nil {
			return fmt.Errorf("clear explanations: %w", err)
		}
		fmt.Printf("Removed %d cached explanations.\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
