package theme

import "github.com/charmbracelet/lipgloss"

var Nord = Theme{
	Name:    "Nord",
	Base:    lipgloss.Color("#2e3440"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Accent: lipgloss.Color("#88c0d0"),
	Border: lipgloss.Color("#4c566a"),

	Billions:  lipgloss.Color("#d08770"),
	Millions:  lipgloss.Color("#a3be8c"),
	Thousands: lipgloss.Color("#81a1c1"),

	StatusOK:      lipgloss.Color("#a3be8c"),
	StatusError:   lipgloss.Color("#bf616a"),
	StatusWarning: lipgloss.Color("#ebcb8b"),
}
