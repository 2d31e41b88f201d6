package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/slovo/internal/llm"
	"github.com/abhisek/slovo/internal/store"
)

var llmCmd = newLLMCmd()

func newLLMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "llm",
		Short: "Inspect the explanation requests sent to the LLM",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List recent explanation requests",
		RunE:  runLLMList,
	}
	list.Flags().IntP("limit", "n", 20, "Number of requests to show")
	list.Flags().Bool("failed", false, "Only show failed requests")

	view := &cobra.Command{
		Use:   "view <id>",
		Short: "Show the prompt and answer of one request",
		Args:  cobra.ExactArgs(1),
		RunE:  runLLMView,
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show token usage and estimated cost per model",
		RunE:  runLLMStats,
	}

	cmd.AddCommand(list, view, stats)
	return cmd
}

func runLLMList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	failedOnly, _ := cmd.Flags().GetBool("failed")

	_, s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	// Failures are filtered here, so fetch unbounded and cut afterwards.
	opts := store.QueryOpts{Limit: limit}
	if failedOnly {
		opts.Limit = 0
	}
	events, err := s.LLMEventRepo().QueryLLMEvents(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}
	if failedOnly {
		events = failedEvents(events, limit)
	}

	printEventList(cmd.OutOrStdout(), events)
	return nil
}

func failedEvents(events []store.LLMRequestEvent, limit int) []store.LLMRequestEvent {
	var out []store.LLMRequestEvent
	for _, e := range events {
		if e.Success {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func printEventList(w io.Writer, events []store.LLMRequestEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No explanation requests recorded.")
		return
	}
	fmt.Fprintf(w, "%-5s  %-16s  %-28s  %9s  %7s  %s\n", "ID", "Time", "Model", "Tokens", "Ms", "Status")
	fmt.Fprintln(w, strings.Repeat("─", 90))
	for _, e := range events {
		fmt.Fprintf(w, "%-5d  %-16s  %-28s  %4d/%-4d  %7d  %s\n",
			e.ID,
			e.Timestamp.Local().Format("2006-01-02 15:04"),
			clip(e.Model, 28),
			e.InputTokens, e.OutputTokens,
			e.LatencyMs,
			eventStatus(e),
		)
	}
}

func eventStatus(e store.LLMRequestEvent) string {
	if e.Success {
		return "ok"
	}
	return clip(e.ErrorMessage, 40)
}

func runLLMView(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ID %q", args[0])
	}

	_, s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := s.LLMEventRepo().GetLLMEvent(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if e == nil {
		return fmt.Errorf("event %d not found", id)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "#%d  %s  %s/%s  %s\n", e.ID, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Provider, e.Model, e.Purpose)
	fmt.Fprintf(w, "%d in / %d out tokens, %d ms\n", e.InputTokens, e.OutputTokens, e.LatencyMs)
	if !e.Success {
		fmt.Fprintf(w, "error: %s\n", e.ErrorMessage)
	}
	for _, part := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintf(w, "\n── %s %s\n", part.title, strings.Repeat("─", 50-len(part.title)))
		if part.body == "" {
			fmt.Fprintln(w, "(none)")
			continue
		}
		fmt.Fprintln(w, strings.TrimRight(part.body, "\n"))
	}
	return nil
}

func runLLMStats(cmd *cobra.Command, args []string) error {
	_, s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	byPurpose, err := s.LLMEventRepo().LLMUsageByPurpose(cmd.Context())
	if err != nil {
		return fmt.Errorf("query usage: %w", err)
	}
	byModel, err := s.LLMEventRepo().LLMUsageByModel(cmd.Context())
	if err != nil {
		return fmt.Errorf("query model usage: %w", err)
	}

	printUsage(cmd.OutOrStdout(), byPurpose, byModel)
	return nil
}

func printUsage(w io.Writer, byPurpose []store.LLMUsageStats, byModel []store.LLMModelUsage) {
	if len(byPurpose) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded yet.")
		return
	}
	for _, p := range byPurpose {
		fmt.Fprintf(w, "%s: %d requests, %d ms average\n", p.Purpose, p.Calls, p.AvgLatencyMs)
	}

	fmt.Fprintf(w, "\n%-32s  %6s  %9s  %9s  %9s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	var total float64
	var unpriced []string
	for _, m := range byModel {
		cost := "?"
		if price, ok := llm.LookupCost(m.Model); ok {
			c := price.Cost(llm.Usage{InputTokens: m.InputTokens, OutputTokens: m.OutputTokens})
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, m.Model)
		}
		fmt.Fprintf(w, "%-32s  %6d  %9d  %9d  %9s\n", clip(m.Model, 32), m.Calls, m.InputTokens, m.OutputTokens, cost)
	}

	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintln(w, strings.Repeat("─", 72))
	fmt.Fprintf(w, "%-32s  %6s  %9s  %9s  %9s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
	}
}

// clip shortens s to n runes.
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
