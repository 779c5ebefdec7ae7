package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"eventizer/lib/chrono"
)

type DaemonOptions struct {
	// cron spec, descriptors such as "@every 6h" are accepted
	Schedule string
	Groups   []string
	// run once immediately instead of waiting for the first tick
	RunAtStart bool
}

// StartDaemon schedules periodic ingestion of the configured groups. Ticks
// that fire while a previous run of the same group is still going join that
// run instead of starting another one.
func (s *Service) StartDaemon(ctx context.Context, cron chrono.CronAPI, options DaemonOptions) error {
	if len(options.Groups) == 0 {
		return fmt.Errorf("no groups to ingest")
	}
	if options.Schedule == "" {
		return fmt.Errorf("no schedule given")
	}

	run := func() {
		if ctx.Err() != nil {
			return
		}
		results, err := s.IngestAll(ctx, options.Groups)
		if err != nil {
			slog.ErrorContext(ctx, "scheduled ingestion had failures", "succeeded", len(results), "err", err)
			return
		}
		slog.InfoContext(ctx, "scheduled ingestion finished", "groups", len(results))
	}

	err := cron.Cron(options.Schedule, run)
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", options.Schedule, err)
	}
	slog.InfoContext(ctx, "ingestion scheduled", "schedule", options.Schedule, "groups", options.Groups)

	if options.RunAtStart {
		go run()
	}
	return nil
}
