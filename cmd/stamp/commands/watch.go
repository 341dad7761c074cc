package commands

import (
	"github.com/assetstamp/stamp/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-stamp units whenever their inputs change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, _ := cmd.Flags().GetInt("jobs")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Jobs:     jobs,
				Debounce: debounce,
			})
		},
	}
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent unit resolutions (0 uses all CPUs)")
	cmd.Flags().Duration("debounce", app.DefaultDebounce, "Window during which file events are coalesced")
	return cmd
}
