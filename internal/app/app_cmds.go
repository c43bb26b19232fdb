package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sitetraffic/internal/ui/msgs"
)

// The open sequence runs as three commands, each feeding the next through
// the update loop: resolve, then cache check, then fetch on a miss.

func (a App) resolveCmd() tea.Cmd {
	ctx, session := a.ctx, a.session
	return func() tea.Msg {
		return msgs.DomainResolvedMsg{Domain: session.ResolveDomain(ctx)}
	}
}

func (a App) checkCacheCmd(domain string) tea.Cmd {
	session := a.session
	return func() tea.Msg {
		snap, hit := session.CheckCache(domain)
		return msgs.CacheCheckedMsg{Domain: domain, Snapshot: snap, Hit: hit}
	}
}

func (a App) fetchCmd(domain string) tea.Cmd {
	ctx, session := a.ctx, a.session
	return func() tea.Msg {
		res, err := session.Fetch(ctx, domain)
		return msgs.FetchDoneMsg{Domain: domain, Result: res, Err: err}
	}
}

func (a App) copyCmd() tea.Cmd {
	items := a.model.Items()
	write := a.copy
	return func() tea.Msg {
		if err := write(strings.Join(items, "\n")); err != nil {
			return msgs.CopyDoneMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return msgs.CopyDoneMsg{Lines: len(items)}
	}
}
