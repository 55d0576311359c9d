// Package tui provides styled terminal rendering for version listings and the
// interactive selector
package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Lazy initialization to avoid cold start penalty from lipgloss terminal detection
var (
	initOnce sync.Once

	colorPrimary lipgloss.Color
	colorSuccess lipgloss.Color
	colorMuted   lipgloss.Color

	// StyleSelected highlights the selector's current row.
	StyleSelected lipgloss.Style
	// StyleActive marks the currently deployed version.
	StyleActive lipgloss.Style
	// StyleInstalled marks locally present versions in listings.
	StyleInstalled lipgloss.Style
	// StyleMuted renders de-emphasized text.
	StyleMuted lipgloss.Style

	// Marker strings
	Pointer   string
	CheckMark string
)

func initStyles() {
	initOnce.Do(func() {
		// Force TrueColor profile to skip slow terminal capability detection
		lipgloss.SetColorProfile(termenv.TrueColor)

		colorPrimary = lipgloss.Color("39") // Cyan
		colorSuccess = lipgloss.Color("42") // Green
		colorMuted = lipgloss.Color("245")  // Gray

		StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

		StyleActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

		StyleInstalled = lipgloss.NewStyle().
			Foreground(colorSuccess)

		StyleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

		Pointer = StyleSelected.Render("›")
		CheckMark = StyleInstalled.Render("✓")
	})
}

// Init ensures styles are initialized. Call this before using any styles.
func Init() {
	initStyles()
}

// RenderSelected renders a selector row in the highlighted style.
func RenderSelected(text string) string {
	initStyles()
	return StyleSelected.Render(text)
}

// RenderActive renders the active version marker style.
func RenderActive(text string) string {
	initStyles()
	return StyleActive.Render(text)
}

// RenderMuted renders text in a muted/dim style.
func RenderMuted(text string) string {
	initStyles()
	return StyleMuted.Render(text)
}
