package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for the popup.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	Accent lipgloss.Color
	Border lipgloss.Color

	// Traffic magnitudes
	Billions  lipgloss.Color
	Millions  lipgloss.Color
	Thousands lipgloss.Color

	// Semantic
	StatusOK      lipgloss.Color
	StatusError   lipgloss.Color
	StatusWarning lipgloss.Color
}

// MagnitudeColor returns the color for a formatted traffic label such as
// "Jan 2024: 5.0M", keyed on its unit suffix.
func (t Theme) MagnitudeColor(label string) lipgloss.Color {
	switch {
	case strings.HasSuffix(label, "B"):
		return t.Billions
	case strings.HasSuffix(label, "M"):
		return t.Millions
	case strings.HasSuffix(label, "k"):
		return t.Thousands
	default:
		return t.Text
	}
}
