package commands

import (
	"eventizer/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints row counts and the stored groups.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		store, cleanup := openStore(ctx)
		defer cleanup()

		counts, err := store.Counts(ctx)
		if err != nil {
			serviceutil.Fatal("failed to count rows", err)
		}
		renderCounts(counts)

		summaries, err := store.GroupSummaries(ctx)
		if err != nil {
			serviceutil.Fatal("failed to list groups", err)
		}
		renderSummaries(summaries)
	},
}
