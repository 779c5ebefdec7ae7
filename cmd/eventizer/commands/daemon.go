package commands

import (
	"context"
	"time"

	"eventizer/lib/chrono"
	"eventizer/lib/telemetry"
	"eventizer/lib/util/serviceutil"
	"eventizer/services/ingest"

	"github.com/spf13/cobra"
)

var runAtStart bool

func init() {
	daemonCmd.Flags().BoolVar(&runAtStart, "now", false, "Also ingest every configured group right away.")
	rootCmd.AddCommand(daemonCmd)
}

var daemonCmd = &cobra.Command{
	Use:   "daemon [--now]",
	Short: "Periodically ingests the configured groups until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		service, config, cleanup := openService(ctx)
		defer cleanup()

		telemetry.InstrumentPerfStats(ctx, 15*time.Second)

		cron := chrono.NewStandardCron(config.location())
		err := service.StartDaemon(ctx, cron, ingest.DaemonOptions{
			Schedule:   config.Schedule,
			Groups:     config.Groups,
			RunAtStart: runAtStart,
		})
		if err != nil {
			serviceutil.Fatal("failed to start daemon", err)
		}

		<-ctx.Done()

		// wait for a run in progress to wind down
		stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		select {
		case <-cron.Stop().Done():
		case <-stopCtx.Done():
		}
	},
}
