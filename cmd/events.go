package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pathway/internal/printer"
	"github.com/abhisek/pathway/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the journal of provider calls",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent provider calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		op, _ := cmd.Flags().GetString("op")
		if op != "" && op != store.OpFetch && op != store.OpProgress {
			return fmt.Errorf("invalid --op %q: must be %s or %s", op, store.OpFetch, store.OpProgress)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryProviderEvents(cmd.Context(), store.QueryOpts{Limit: limit, Operation: op})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		printEvents(events)
		return nil
	},
}

func init() {
	eventsListCmd.Flags().IntP("limit", "n", 20, "Maximum number of events")
	eventsListCmd.Flags().String("op", "", "Only show one operation: fetch or progress")
	eventsCmd.AddCommand(eventsListCmd)
}

func printEvents(events []store.ProviderEvent) {
	if len(events) == 0 {
		printer.Info("No provider events found.\n")
		return
	}

	printer.Heading("%-5s  %-19s  %-8s  %-6s  %-8s  %-6s  %-6s  %s\n",
		"Seq", "Timestamp", "Op", "Step", "Done", "Status", "Ms", "OK")
	printer.Dim("%s\n", strings.Repeat("─", 80))

	for _, e := range events {
		step, done := "-", "-"
		if e.StepID != nil {
			step = fmt.Sprintf("%d", *e.StepID)
		}
		if e.Completed != nil {
			done = fmt.Sprintf("%t", *e.Completed)
		}
		status := "-"
		if e.StatusCode != 0 {
			status = fmt.Sprintf("%d", e.StatusCode)
		}
		line := fmt.Sprintf("%-5d  %-19s  %-8s  %-6s  %-8s  %-6s  %-6d  ",
			e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Operation, step, done, status, e.LatencyMs)
		if e.Success {
			printer.Info("%s✓\n", line)
			continue
		}
		printer.Info("%s✗ %s\n", line, e.ErrorMessage)
	}
}
