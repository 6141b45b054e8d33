package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrivenko/trackerd/internal/board"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.reload()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.reload()
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevDay):
		m.date = m.date.AddDate(0, 0, -1)
		m.reload()

	case key.Matches(msg, m.keys.NextDay):
		m.date = m.date.AddDate(0, 0, 1)
		m.reload()

	case key.Matches(msg, m.keys.Today):
		m.date = time.Now()
		m.reload()

	case key.Matches(msg, m.keys.Filter):
		m.mode = nextMode(m.mode)
		if m.mode == board.ModeToday {
			// The today filter snaps the reference date back to now.
			m.date = time.Now()
		}
		m.reload()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()

	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
	}

	return m, nil
}

func nextMode(mode board.Mode) board.Mode {
	for i, candidate := range board.Modes {
		if candidate == mode {
			return board.Modes[(i+1)%len(board.Modes)]
		}
	}
	return board.ModeAll
}
