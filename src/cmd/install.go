package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/ui"
)

type alias int

const (
	aliasLatest alias = iota
	aliasStable
)

var latestCmd = &cobra.Command{
	Use:   "latest [cfg]",
	Short: "Install the newest published version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return installAlias(aliasLatest, hintArg(args))
	},
}

var stableCmd = &cobra.Command{
	Use:   "stable [cfg]",
	Short: "Install the newest stable-line version",
	Long: `Install the newest version on the stable release line.

Stable releases carry an even minor component (odd minors are development
lines), a convention of the Node.js project's historical release scheme.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return installAlias(aliasStable, hintArg(args))
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(stableCmd)
}

func hintArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// resolveAlias queries the remote catalog for the version an alias names.
func resolveAlias(a alias) (string, error) {
	cat, err := newCatalog()
	if err != nil {
		return "", err
	}
	if a == aliasStable {
		v, err := cat.LatestStable()
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
	v, err := cat.Latest()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func installAlias(a alias, hint string) error {
	version, err := resolveAlias(a)
	if err != nil {
		return err
	}
	ui.Info("Resolved to %s", ui.HighlightVersion(version))
	return installOrActivate(version, hint)
}

// printResolved prints the version an alias resolves to, nothing else. Used
// by the --latest/--stable flags.
func printResolved(a alias) error {
	version, err := resolveAlias(a)
	if err != nil {
		return err
	}
	ui.Println("%s", version)
	return nil
}

// installOrActivate is the install entry point. An already-installed version
// activates directly with no network access; otherwise the version is
// validated upstream, downloaded into the registry and then activated.
func installOrActivate(version, hint string) error {
	st := newStore()
	mgr := newManager()

	if st.IsInstalled(version) {
		ui.Debug("Version %s already installed, activating", version)
		if err := mgr.Activate(version); err != nil {
			return err
		}
		ui.Success("Now using node v%s", version)
		return nil
	}

	ui.Header("Installing node v%s...", version)
	if err := st.Install(version, hint, newTransport()); err != nil {
		return err
	}
	if err := mgr.Activate(version); err != nil {
		return err
	}

	ui.Success("Now using node v%s", version)
	return nil
}
