package cmd

import (
	"github.com/cockroachdb/errors"

	"github.com/nodeman/nodeman/src/internal/selector"
	"github.com/nodeman/nodeman/src/internal/ui"
)

// runInteractive drives the selector over the installed versions and
// activates the committed choice.
func runInteractive() error {
	st := newStore()
	mgr := newManager()

	installed, err := st.List()
	if err != nil {
		return err
	}
	if len(installed) == 0 {
		return errors.New("no versions installed; run 'nodeman <version>' first")
	}

	versions := make([]string, len(installed))
	for i, v := range installed {
		versions[i] = v.String()
	}

	selected, committed, err := selector.Run(versions, mgr.Current())
	if err != nil {
		return err
	}
	if !committed {
		return nil
	}

	if err := mgr.Activate(selected); err != nil {
		return err
	}
	ui.Success("Now using node v%s", selected)
	return nil
}
