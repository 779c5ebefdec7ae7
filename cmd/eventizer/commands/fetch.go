package commands

import (
	"context"
	"fmt"
	"log/slog"

	"eventizer/services/ingest"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

type groupIngester interface {
	Ingest(ctx context.Context, urlName string) (ingest.Result, error)
}

// fetchGroups ingests every group in turn, reporting each result as it
// finishes. It fails if any group failed.
func fetchGroups(ctx context.Context, ingester groupIngester, groups []string, report func(ingest.Result)) error {
	failed := 0
	for _, name := range groups {
		result, err := ingester.Ingest(ctx, name)
		if err != nil {
			slog.Error("failed to ingest group", "group", name, "err", err)
			failed++
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		report(result)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d groups failed to ingest", failed, len(groups))
	}
	return nil
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [group-urlname...]",
	Short: "Ingests the given groups once, or the configured groups when none are given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		service, config, cleanup := openService(ctx)
		defer cleanup()

		groups := args
		if len(groups) == 0 {
			groups = config.Groups
		}
		if len(groups) == 0 {
			return fmt.Errorf("no groups given and none configured")
		}
		cmd.SilenceUsage = true
		return fetchGroups(ctx, service, groups, renderResult)
	},
}
