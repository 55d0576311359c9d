// Package activate deploys stored versions into the installation prefix and
// maintains the previous-version record used for revert
package activate

import (
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/nodeman/nodeman/src/internal/config"
	"github.com/nodeman/nodeman/src/internal/store"
	"github.com/nodeman/nodeman/src/internal/ui"
)

// ErrNoPreviousVersion is returned when a revert is requested and no
// previous-version record exists.
var ErrNoPreviousVersion = errors.New("no previous version recorded")

// Manager performs activations against a single installation prefix.
type Manager struct {
	paths *config.Paths
}

// NewManager returns a Manager over the given paths.
func NewManager(paths *config.Paths) *Manager {
	return &Manager{paths: paths}
}

// Activate deploys an installed version into the prefix. The version that was
// active beforehand is written to the previous-version record first, then the
// stored tree is merge-copied over the prefix. The copy overwrites matching
// paths, preserves permissions and timestamps, and leaves unrelated files in
// the prefix untouched. A crash mid-copy leaves a mixed prefix; the copy is
// best-effort, not transactional.
func (m *Manager) Activate(version string) error {
	srcDir := m.paths.VersionDir(version)
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return errors.Wrapf(store.ErrNotInstalled, "version %s", version)
	}

	// Record the outgoing version before touching the prefix. An empty
	// record is still written when nothing was active, overwriting any
	// stale value.
	current := m.Current()
	if err := m.writePrev(current); err != nil {
		return errors.Wrap(err, "failed to record previous version")
	}
	ui.Debug("Previous version record: %q", current)

	if err := mergeCopy(srcDir, m.paths.Prefix); err != nil {
		return errors.Wrapf(err, "failed to deploy version %s", version)
	}

	ui.Debug("Activated %s into %s", version, m.paths.Prefix)
	return nil
}

// RevertToPrevious re-activates the version recorded before the most recent
// activation. Each activation remembers exactly one level of history, so two
// consecutive reverts bounce between the same pair of versions rather than
// walking an undo stack.
func (m *Manager) RevertToPrevious() error {
	prev, err := m.readPrev()
	if err != nil {
		return err
	}
	return m.Activate(prev)
}

// Current probes the prefix's deployed binary for its version. The result is
// derived every call, never cached. An empty string means no binary resolved.
func (m *Manager) Current() string {
	out, err := exec.Command(m.paths.ActiveBinary(), "--version").Output()
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(string(out)), "v")
}

// Previous returns the recorded previous version without activating it.
func (m *Manager) Previous() (string, error) {
	return m.readPrev()
}

func (m *Manager) readPrev() (string, error) {
	raw, err := os.ReadFile(m.paths.PrevFile())
	if err != nil {
		return "", errors.Wrap(ErrNoPreviousVersion, "no record")
	}
	prev := strings.TrimSpace(string(raw))
	if prev == "" {
		return "", errors.Wrap(ErrNoPreviousVersion, "empty record")
	}
	return prev, nil
}

// writePrev persists the record with a tmp+rename so a partial write never
// corrupts it.
func (m *Manager) writePrev(version string) error {
	if err := m.paths.EnsureRegistry(); err != nil {
		return err
	}
	path := m.paths.PrevFile()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(version+"\n"), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
