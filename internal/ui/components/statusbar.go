package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/sitetraffic/internal/ui/theme"
)

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	state    string
	source   string
	months   int
	duration time.Duration
	size     int64
	note     string
	noteErr  bool
	width    int
	theme    theme.Theme
	styles   theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		state:  "initializing",
	}
}

// SetState sets the popup state label shown as a badge.
func (m *StatusBar) SetState(state string) {
	m.state = state
}

// SetResult records where the list came from and, for network results, the
// request's duration and body size.
func (m *StatusBar) SetResult(source string, months int, duration time.Duration, size int64) {
	m.source = source
	m.months = months
	m.duration = duration
	m.size = size
}

// SetNote sets a persistent note, such as the reason a fetch failed.
func (m *StatusBar) SetNote(text string, isError bool) {
	m.note = text
	m.noteErr = isError
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

func (m StatusBar) text(fg lipgloss.Color, s string) string {
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Render(s)
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	badge := m.styles.Badge.Render(strings.ToUpper(m.state))

	var leftParts []string
	switch {
	case m.note != "":
		fg := m.theme.StatusWarning
		if m.noteErr {
			fg = m.theme.StatusError
		}
		leftParts = append(leftParts, m.text(fg, m.note))
	default:
		if m.source != "" {
			leftParts = append(leftParts, m.text(m.theme.StatusOK, m.source))
			leftParts = append(leftParts, m.text(m.theme.Subtext, fmt.Sprintf("%d months", m.months)))
		}
		if m.duration > 0 {
			leftParts = append(leftParts, m.text(m.theme.Subtext, formatDuration(m.duration)))
		}
		if m.size > 0 {
			leftParts = append(leftParts, m.text(m.theme.Subtext, humanize.IBytes(uint64(m.size))))
		}
	}
	left := strings.Join(leftParts, m.text(m.theme.Muted, " │ "))

	return barStyle.Render(badge + " " + left)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
