// Package tui is the interactive tracker board: day navigation, search,
// filter cycling and completion toggling over the repository layer.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrivenko/trackerd/internal/board"
	"github.com/dkrivenko/trackerd/internal/models"
	"github.com/dkrivenko/trackerd/internal/storage"
)

type Model struct {
	store storage.Provider

	date     time.Time
	mode     board.Mode
	snapshot board.Snapshot
	total    int

	search    textinput.Model
	searching bool

	cursor int
	status string
	err    error

	keys keyMap
	help help.Model
}

func NewModel(store storage.Provider) Model {
	search := textinput.New()
	search.Placeholder = "Search"
	search.CharLimit = 64

	m := Model{
		store:  store,
		date:   time.Now(),
		mode:   board.ModeAll,
		search: search,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reload re-reads the store and rebuilds the board projection.
func (m *Model) reload() {
	categories, err := m.store.Categories().FetchAll()
	if err != nil {
		m.err = err
		return
	}
	records, err := m.store.Records().FetchAll()
	if err != nil {
		m.err = err
		return
	}
	total, err := m.store.Records().TotalCompletedCount()
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.total = total
	m.snapshot = board.Build(categories, records, m.date, m.search.Value(), m.mode)

	if n := len(m.items()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// items flattens the snapshot's sections for cursor navigation.
func (m *Model) items() []board.Item {
	var items []board.Item
	for _, s := range m.snapshot.Sections {
		items = append(items, s.Items...)
	}
	return items
}

func (m *Model) toggleSelected() {
	items := m.items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return
	}
	item := items[m.cursor]

	if m.snapshot.Date.After(models.StartOfDay(time.Now())) {
		m.status = "Completion cannot be recorded for a future date"
		return
	}

	repo := m.store.Records()
	record := models.NewTrackerRecord(item.Tracker.ID, m.snapshot.Date)
	done, err := repo.Contains(record)
	if err != nil {
		m.err = err
		return
	}
	if done {
		err = repo.Delete(record)
	} else {
		err = repo.Add(record)
	}
	if err != nil {
		m.err = err
		return
	}
	m.status = ""
	m.reload()
}
