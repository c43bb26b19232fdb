package theme

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name:    "Catppuccin Mocha",
	Base:    lipgloss.Color("#1e1e2e"),
	Surface: lipgloss.Color("#313244"),
	Overlay: lipgloss.Color("#45475a"),

	Text:    lipgloss.Color("#cdd6f4"),
	Subtext: lipgloss.Color("#a6adc8"),
	Muted:   lipgloss.Color("#585b70"),

	Accent: lipgloss.Color("#cba6f7"),
	Border: lipgloss.Color("#585b70"),

	Billions:  lipgloss.Color("#fab387"),
	Millions:  lipgloss.Color("#a6e3a1"),
	Thousands: lipgloss.Color("#89b4fa"),

	StatusOK:      lipgloss.Color("#a6e3a1"),
	StatusError:   lipgloss.Color("#f38ba8"),
	StatusWarning: lipgloss.Color("#f9e2af"),
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}

// CustomDir is ~/.config/sitetraffic/themes, or "" without a home dir.
func CustomDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sitetraffic", "themes")
}

// Resolve looks up a theme by name: catalog -> custom themes -> fallback to Mocha.
func Resolve(name string) Theme {
	if t, ok := Get(name); ok {
		return t
	}

	if dir := CustomDir(); dir != "" {
		if t, ok := LoadCustomThemes(dir)[normalizeKey(name)]; ok {
			return t
		}
	}

	return CatppuccinMocha
}
