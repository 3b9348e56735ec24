// Package picker implements the quick-pick prompt used when several
// openers compete for a link.
package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"openpick/app"
	"openpick/tui/common"
)

// Model holds the state for one quick-pick prompt.
type Model struct {
	placeholder string
	items       []app.PickItem
	cursor      int
	width       int
	keys        common.KeyMap
	done        bool
	cancelled   bool
}

// New creates a quick-pick over the given items. The cursor starts on
// the first selectable item.
func New(placeholder string, items []app.PickItem) Model {
	m := Model{
		placeholder: placeholder,
		items:       items,
		keys:        common.DefaultKeyMap(),
	}
	m.cursor = m.firstSelectable()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation, selection, and cancellation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = m.move(-1)

		case key.Matches(msg, m.keys.Down):
			m.cursor = m.move(1)

		case key.Matches(msg, m.keys.Select):
			if m.selectable(m.cursor) {
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// Selection returns the picked item, or nil when the prompt was
// dismissed.
func (m Model) Selection() *app.PickItem {
	if !m.done || m.cancelled || !m.selectable(m.cursor) {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

func (m Model) selectable(i int) bool {
	return i >= 0 && i < len(m.items) && m.items[i].Kind != app.PickSeparator
}

func (m Model) firstSelectable() int {
	for i := range m.items {
		if m.selectable(i) {
			return i
		}
	}
	return 0
}

// move advances the cursor by dir, skipping separators. The cursor
// stays put at either end of the list.
func (m Model) move(dir int) int {
	for i := m.cursor + dir; i >= 0 && i < len(m.items); i += dir {
		if m.selectable(i) {
			return i
		}
	}
	return m.cursor
}
