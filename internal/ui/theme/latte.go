package theme

import "github.com/charmbracelet/lipgloss"

var CatppuccinLatte = Theme{
	Name:    "Catppuccin Latte",
	Base:    lipgloss.Color("#eff1f5"),
	Surface: lipgloss.Color("#ccd0da"),
	Overlay: lipgloss.Color("#9ca0b0"),

	Text:    lipgloss.Color("#4c4f69"),
	Subtext: lipgloss.Color("#6c6f85"),
	Muted:   lipgloss.Color("#8c8fa1"),

	Accent: lipgloss.Color("#8839ef"),
	Border: lipgloss.Color("#8c8fa1"),

	Billions:  lipgloss.Color("#fe640b"),
	Millions:  lipgloss.Color("#40a02b"),
	Thousands: lipgloss.Color("#1e66f5"),

	StatusOK:      lipgloss.Color("#40a02b"),
	StatusError:   lipgloss.Color("#d20f39"),
	StatusWarning: lipgloss.Color("#df8e1d"),
}
