// Package cmd implements the CLI commands for nodeman
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/ui"
)

var (
	verbose    bool
	showLatest bool
	showStable bool
)

var rootCmd = &cobra.Command{
	Use:   "nodeman [version]",
	Short: "Node.js version manager",
	Long: `nodeman installs, activates and removes Node.js versions.

Run with no arguments to pick an installed version interactively, or pass a
version to install-or-activate it:

  nodeman            # interactive selector over installed versions
  nodeman 18.16.0    # install 18.16.0 (or activate it if already installed)
  nodeman latest     # install the newest published version
  nodeman stable     # install the newest stable-line version`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showLatest {
			return printResolved(aliasLatest)
		}
		if showStable {
			return printResolved(aliasStable)
		}
		if len(args) == 0 {
			return runInteractive()
		}
		return installOrActivate(args[0], "")
	},
}

func Execute() {
	args := os.Args[1:]

	// Check for -V/--version before Cobra parses
	if wantsToolVersion(args) {
		versionCmd.Run(versionCmd, []string{})
		return
	}

	rootCmd.SetArgs(rewriteArgs(args))
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

// wantsToolVersion reports whether the leading flags ask for nodeman's own
// version. The scan stops at the first non-flag token (or --) so arguments
// destined for a pass-through command like use are never intercepted.
func wantsToolVersion(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-V" {
			return true
		}
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			return false
		}
	}
	return false
}

// rewriteArgs maps the bare - removal shorthand onto the rm command. A lone
// dash is stripped before command lookup by the flag parser, so the alias has
// to be resolved here.
func rewriteArgs(args []string) []string {
	if len(args) > 0 && args[0] == "-" {
		return append([]string{"rm"}, args[1:]...)
	}
	return args
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output for debugging")
	rootCmd.Flags().BoolVar(&showLatest, "latest", false, "Print the newest published version and exit")
	rootCmd.Flags().BoolVar(&showStable, "stable", false, "Print the newest stable-line version and exit")
}
