package commands

import (
	"fmt"
	"io"

	"github.com/assetstamp/stamp/internal/app"
	"github.com/assetstamp/stamp/internal/engine/stamper"
	"github.com/assetstamp/stamp/internal/ui/style"
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [units...]",
		Short: "Resolve version tags and update the manifest",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check, _ := cmd.Flags().GetBool("check")
			jobs, _ := cmd.Flags().GetInt("jobs")

			results, err := c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Units: args,
				Jobs:  jobs,
				Check: check,
			})
			renderResults(cmd.OutOrStdout(), results)
			return err
		},
	}
	cmd.Flags().Bool("check", false, "Verify tags are current without writing the manifest (exit 1 when stale)")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent unit resolutions (0 uses all CPUs)")
	return cmd
}

func renderResults(w io.Writer, results []stamper.Result) {
	for _, result := range results {
		switch result.Status {
		case stamper.StatusStamped:
			_, _ = fmt.Fprintf(w, "%s %s %s\n",
				style.ChangedStyle.Render(style.Check),
				result.UnitName,
				style.TagStyle.Render(result.Tag.String()),
			)
		case stamper.StatusUnchanged:
			_, _ = fmt.Fprintf(w, "%s %s\n",
				style.UnchangedStyle.Render(style.Circle),
				style.UnchangedStyle.Render(result.UnitName),
			)
		case stamper.StatusFailed:
			_, _ = fmt.Fprintf(w, "%s %s\n",
				style.FailedStyle.Render(style.Cross),
				result.UnitName,
			)
		}
	}
}
