package commands

import (
	"log/slog"

	"eventizer/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteGroupCmd)
	rootCmd.AddCommand(deleteEventCmd)
}

var deleteGroupCmd = &cobra.Command{
	Use:   "delete-group <group-urlname>...",
	Short: "Removes groups along with their events and answers, members are kept.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		store, cleanup := openStore(ctx)
		defer cleanup()

		for _, name := range args {
			deleted, err := store.DeleteGroup(ctx, name)
			if err != nil {
				serviceutil.Fatal("failed to delete group", err)
			}
			if !deleted {
				slog.Warn("group is not stored", "group", name)
				continue
			}
			slog.Info("deleted group", "group", name)
		}
	},
}

var deleteEventCmd = &cobra.Command{
	Use:   "delete-event <event-id>...",
	Short: "Removes events along with their answers.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		store, cleanup := openStore(ctx)
		defer cleanup()

		for _, id := range args {
			deleted, err := store.DeleteEvent(ctx, id)
			if err != nil {
				serviceutil.Fatal("failed to delete event", err)
			}
			if !deleted {
				slog.Warn("event is not stored", "event", id)
				continue
			}
			slog.Info("deleted event", "event", id)
		}
	},
}
