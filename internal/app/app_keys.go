package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sitetraffic/internal/popup"
)

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(msg, a.keys.Copy):
		if a.model.State != popup.Ready || a.model.Snapshot.Len() == 0 {
			cmd := a.toast.Show("Nothing to copy", true, 0)
			return a, cmd
		}
		return a, a.copyCmd()
	}
	return a, nil
}
