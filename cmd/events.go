package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mit-orcd/coldfront-deployctl/internal/audit"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recorded deployment events",
	Long: `Events prints the audit trail of init, generate and install actions
recorded under the state directory, oldest first.`,
	RunE: runEvents,
}

var (
	eventsLimit int
	eventsClear bool
)

func init() {
	eventsCmd.Flags().IntVarP(&eventsLimit, "limit", "n", 0, "Show only the last N events (0 shows all)")
	eventsCmd.Flags().BoolVar(&eventsClear, "clear", false, "Delete the recorded events")
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	logger := audit.NewLogger(paths().StateDir)

	if eventsClear {
		if err := logger.Clear(); err != nil {
			return err
		}
		logSuccess("Cleared recorded events")
		return nil
	}

	events, err := logger.Events()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		logInfo("No events recorded.")
		return nil
	}

	if eventsLimit > 0 && len(events) > eventsLimit {
		events = events[len(events)-eventsLimit:]
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tTARGET\tDETAILS")
	fmt.Fprintln(w, "----\t----\t------\t-------")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Format(time.RFC3339), e.Type, e.Target, e.Details)
	}

	return w.Flush()
}
