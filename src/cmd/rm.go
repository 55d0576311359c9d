package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <version>...",
	Short: "Remove installed versions",
	Long: `Remove one or more versions from the registry.

The bare - shorthand is rewritten to this command before parsing, since a
lone dash never survives flag stripping. Versions that are not installed are
skipped silently. The active deployment in the installation prefix is not
touched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.WithSpinner("Removing versions", func() error {
			return newStore().Remove(args...)
		})
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
