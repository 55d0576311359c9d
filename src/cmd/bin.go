package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/ui"
)

var binCmd = &cobra.Command{
	Use:     "bin <version>",
	Aliases: []string{"which"},
	Short:   "Print the path to a version's binary",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newStore().BinaryPath(args[0])
		if err != nil {
			return err
		}
		ui.Println("%s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(binCmd)
}
