package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/catalog"
	"github.com/nodeman/nodeman/src/internal/tui"
	"github.com/nodeman/nodeman/src/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:     "ls [cfg]",
	Aliases: []string{"list"},
	Short:   "List remote versions with local status",
	Long: `List every version published upstream, annotating each one that is
installed locally or currently active.

When a config hint is given, only versions installed with that hint are
marked as installed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tui.Init()
		st := newStore()
		mgr := newManager()

		cat, err := newCatalog()
		if err != nil {
			return err
		}

		local, err := st.List()
		if err != nil {
			return err
		}
		if hint := hintArg(args); hint != "" {
			filtered := local[:0]
			for _, v := range local {
				if st.ConfigHint(v.String()) == hint {
					filtered = append(filtered, v)
				}
			}
			local = filtered
		}

		ui.Info("Fetching available versions...")
		entries, err := cat.ListWithStatus(local, mgr.Current())
		if err != nil {
			return err
		}

		for _, e := range entries {
			printEntry(e)
		}
		return nil
	},
}

func printEntry(e catalog.Entry) {
	switch e.Status {
	case catalog.StatusActive:
		fmt.Printf("  %s %s %s\n", tui.Pointer, tui.RenderActive(e.Version.String()), tui.RenderMuted("(active)"))
	case catalog.StatusInstalled:
		fmt.Printf("  %s %s\n", tui.CheckMark, e.Version.String())
	default:
		fmt.Printf("    %s\n", tui.RenderMuted(e.Version.String()))
	}
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
