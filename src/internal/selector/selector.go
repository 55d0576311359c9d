// Package selector implements the interactive version picker as a bubbletea
// state machine
package selector

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nodeman/nodeman/src/internal/tui"
)

// Model is the selector state machine. The installed list is a fixed ordered
// sequence; the cursor moves over it with Up/Down, clamped at both ends, and
// any other key commits the current selection and ends the session.
type Model struct {
	versions  []string
	cursor    int
	committed bool
}

// New returns a Model over the installed versions. The cursor starts on the
// active version when it appears in the list, otherwise on the first entry.
func New(versions []string, active string) Model {
	m := Model{versions: versions}
	for i, v := range versions {
		if v == active {
			m.cursor = i
			break
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.versions)-1 {
			m.cursor++
		}
		return m, nil
	default:
		// Any non-arrow key commits the selection
		m.committed = true
		return m, tea.Quit
	}
}

// View implements tea.Model. The whole list is redrawn on every transition
// with the selected entry visually distinguished.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(tui.RenderMuted("Installed versions:") + "\n\n")
	for i, v := range m.versions {
		if i == m.cursor {
			b.WriteString("  " + tui.Pointer + " " + tui.RenderSelected(v) + "\n")
		} else {
			b.WriteString("    " + v + "\n")
		}
	}
	b.WriteString("\n" + tui.RenderMuted("↑/↓ move, any other key activates") + "\n")

	return b.String()
}

// Selected returns the version under the cursor.
func (m Model) Selected() string {
	if len(m.versions) == 0 {
		return ""
	}
	return m.versions[m.cursor]
}

// Committed reports whether the session ended by committing a selection.
func (m Model) Committed() bool {
	return m.committed
}

// Run drives the selector over a terminal session and returns the committed
// version. bubbletea holds the terminal in raw mode only for the duration of
// the loop and restores it on exit, including on process signals.
func Run(versions []string, active string) (string, bool, error) {
	final, err := tea.NewProgram(New(versions, active)).Run()
	if err != nil {
		return "", false, err
	}
	m := final.(Model)
	return m.Selected(), m.Committed(), nil
}
