package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	Frame lipgloss.Style

	// Text styles
	Title   lipgloss.Style
	Domain  lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Hint    lipgloss.Style
	Spinner lipgloss.Style

	// Components
	StatusBar  lipgloss.Style
	StatusText lipgloss.Style
	Badge      lipgloss.Style
	Month      lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		Title:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Domain:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Normal:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Error:   lipgloss.NewStyle().Foreground(t.StatusError),
		Success: lipgloss.NewStyle().Foreground(t.StatusOK),
		Warning: lipgloss.NewStyle().Foreground(t.StatusWarning),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Spinner: lipgloss.NewStyle().Foreground(t.Accent),

		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Background(t.Surface),
		Badge: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Accent).
			Bold(true).
			Padding(0, 1),
		Month: lipgloss.NewStyle().Foreground(t.Subtext),
	}
}
