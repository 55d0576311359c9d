package cmd

import (
	"os"
	"os/exec"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/nodeman/nodeman/src/internal/ui"
)

var useCmd = &cobra.Command{
	Use:     "use <version> [args...]",
	Aliases: []string{"as"},
	Short:   "Run a specific version without activating it",
	Long: `Execute an installed version's binary with the given arguments.

The activation state is left untouched; only this one invocation uses the
named version. Everything after the version is handed to the binary verbatim,
flags included.`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newStore().BinaryPath(args[0])
		if err != nil {
			return err
		}
		passthrough := passthroughArgs(args[1:])
		ui.Debug("Executing %s %v", path, passthrough)

		run := exec.Command(path, passthrough...)
		run.Stdin = os.Stdin
		run.Stdout = os.Stdout
		run.Stderr = os.Stderr
		if err := run.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			return err
		}
		return nil
	},
}

// passthroughArgs drops a single leading -- separator, the conventional way
// to shield the runtime's flags from the manager's. Everything else is kept
// as-is.
func passthroughArgs(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

func init() {
	rootCmd.AddCommand(useCmd)
}
