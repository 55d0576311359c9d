package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/ui"
)

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Revert to the previously active version",
	Long: `Re-activate the version that was active before the last activation.

Only one level of history is kept: running prev twice in a row bounces
between the same two versions rather than walking further back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrev()
	},
}

func runPrev() error {
	mgr := newManager()
	prev, err := mgr.Previous()
	if err != nil {
		return err
	}
	if err := mgr.RevertToPrevious(); err != nil {
		return err
	}
	ui.Success("Now using node v%s", prev)
	return nil
}

func init() {
	rootCmd.AddCommand(prevCmd)
}
