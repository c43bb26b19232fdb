package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/sitetraffic/internal/popup"
	"github.com/sadopc/sitetraffic/internal/traffic"
	"github.com/sadopc/sitetraffic/internal/ui/components"
	"github.com/sadopc/sitetraffic/internal/ui/msgs"
	"github.com/sadopc/sitetraffic/internal/ui/theme"
)

const minWidth = 36

// App is the root Bubble Tea model: one popup open.
type App struct {
	session *popup.Session
	model   popup.Model
	ctx     context.Context

	spinner   spinner.Model
	help      help.Model
	statusBar components.StatusBar
	toast     components.Toast
	keys      KeyMap

	copy func(string) error

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
}

// New creates the popup model for session, styled with t.
func New(ctx context.Context, session *popup.Session, t theme.Theme) App {
	s := theme.NewStyles(t)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Spinner

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Subtext)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.Muted)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	return App{
		session:   session,
		model:     popup.New(),
		ctx:       ctx,
		spinner:   sp,
		help:      h,
		statusBar: components.NewStatusBar(t, s),
		toast:     components.NewToast(t, s),
		keys:      DefaultKeyMap(),
		copy:      clipboard.WriteAll,
		theme:     t,
		styles:    s,
		width:     minWidth,
	}
}

// Model returns the current popup state.
func (a App) Model() popup.Model {
	return a.model
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.resolveCmd())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = max(msg.Width, minWidth)
		a.height = msg.Height
		a.statusBar.SetWidth(a.width)
		a.help.Width = a.width
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case msgs.DomainResolvedMsg:
		a.model = a.model.Resolved(msg.Domain)
		a.statusBar.SetState(a.model.State.String())
		return a, a.checkCacheCmd(a.model.Domain)

	case msgs.CacheCheckedMsg:
		if a.model.State != popup.Loading || msg.Domain != a.model.Domain {
			return a, nil
		}
		if !msg.Hit {
			return a, a.fetchCmd(msg.Domain)
		}
		a.model = a.model.CacheHit(msg.Snapshot)
		a.statusBar.SetState(a.model.State.String())
		a.statusBar.SetResult(popup.SourceCache.String(), msg.Snapshot.Len(), 0, 0)
		return a, nil

	case msgs.FetchDoneMsg:
		if a.model.State != popup.Loading || msg.Domain != a.model.Domain {
			return a, nil
		}
		if msg.Err != nil {
			a.model = a.model.FetchFailed(msg.Err)
			a.statusBar.SetState(a.model.State.String())
			a.statusBar.SetNote(failureNote(msg.Err), true)
			return a, nil
		}
		a.model = a.model.Fetched(msg.Result.Snapshot)
		a.statusBar.SetState(a.model.State.String())
		a.statusBar.SetResult(popup.SourceNetwork.String(), msg.Result.Snapshot.Len(), msg.Result.Duration, msg.Result.Size)
		return a, nil

	case msgs.CopyDoneMsg:
		if msg.Err != nil {
			return a, a.toast.Show(msg.Err.Error(), true, 0)
		}
		return a, a.toast.Show(fmt.Sprintf("Copied %d lines", msg.Lines), false, 2*time.Second)

	case spinner.TickMsg:
		if a.model.Terminal() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	return a, cmd
}

// failureNote turns a fetch error into a short status line.
func failureNote(err error) string {
	var fe *traffic.FetchError
	switch {
	case errors.As(err, &fe) && fe.Status != 0:
		return fmt.Sprintf("API returned %d", fe.Status)
	case errors.Is(err, traffic.ErrMalformedPayload):
		return "API returned unexpected data"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return "could not reach traffic API"
	}
}

func (a App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Site Traffic"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("Domain: "))
	b.WriteString(a.styles.Domain.Render(a.model.Domain))
	b.WriteString("\n\n")

	switch a.model.State {
	case popup.Loading:
		b.WriteString(a.spinner.View() + " " + a.styles.Normal.Render("Loading..."))
		b.WriteString("\n")
	case popup.Ready:
		b.WriteString(a.renderList())
	}

	body := a.styles.Frame.Width(a.width - 2).Render(strings.TrimRight(b.String(), "\n"))

	parts := []string{body, a.statusBar.View(), a.help.View(a.keys)}
	main := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}
	return main
}

func (a App) renderList() string {
	entries := a.model.Snapshot.Entries()
	if len(entries) == 0 {
		return a.styles.Hint.Render("no monthly data") + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		month, value, ok := strings.Cut(e.Label, ": ")
		if !ok {
			b.WriteString(a.styles.Normal.Render(e.Label) + "\n")
			continue
		}
		b.WriteString(a.styles.Month.Render(month + ": "))
		b.WriteString(lipgloss.NewStyle().Foreground(a.theme.MagnitudeColor(e.Label)).Bold(true).Render(value))
		b.WriteString("\n")
	}
	return b.String()
}

func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
