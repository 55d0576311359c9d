package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/ui"
)

// Version can be set at build time using ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the nodeman version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nodeman %s\n", ui.HighlightVersion(Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
