package theme

import "github.com/charmbracelet/lipgloss"

var Dracula = Theme{
	Name:    "Dracula",
	Base:    lipgloss.Color("#282a36"),
	Surface: lipgloss.Color("#44475a"),
	Overlay: lipgloss.Color("#6272a4"),

	Text:    lipgloss.Color("#f8f8f2"),
	Subtext: lipgloss.Color("#d0d0d0"),
	Muted:   lipgloss.Color("#6272a4"),

	Accent: lipgloss.Color("#bd93f9"),
	Border: lipgloss.Color("#6272a4"),

	Billions:  lipgloss.Color("#ffb86c"),
	Millions:  lipgloss.Color("#50fa7b"),
	Thousands: lipgloss.Color("#8be9fd"),

	StatusOK:      lipgloss.Color("#50fa7b"),
	StatusError:   lipgloss.Color("#ff5555"),
	StatusWarning: lipgloss.Color("#f1fa8c"),
}
