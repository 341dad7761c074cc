package commands

import (
	"fmt"

	"github.com/assetstamp/stamp/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newURLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url <asset-path>",
		Short: "Compose a versioned URL for an asset path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, _ := cmd.Flags().GetString("unit")
			module, _ := cmd.Flags().GetString("module")
			tag, _ := cmd.Flags().GetString("tag")
			resolve, _ := cmd.Flags().GetBool("resolve")

			url, err := c.app.URL(cmd.Context(), args[0], app.URLOptions{
				Unit:    unit,
				Module:  module,
				Tag:     tag,
				Resolve: resolve,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
	cmd.Flags().StringP("unit", "u", "", "Unit whose tag versions the asset (optional for single-unit projects)")
	cmd.Flags().StringP("module", "m", "", "Version by the running binary's build metadata for the given module path")
	cmd.Flags().StringP("tag", "t", "", "Use an explicit version tag instead of any lookup")
	cmd.Flags().Bool("resolve", false, "Recompute the tag from content instead of reading the manifest")
	return cmd
}
