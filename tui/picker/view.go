package picker

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"openpick/app"
	"openpick/tui/common"
)

const separatorRune = "─"

// View renders the prompt, the choices, and the key hints.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(common.PlaceholderStyle.Render(m.fit(m.placeholder)) + "\n")

	for i, item := range m.items {
		if item.Kind == app.PickSeparator {
			b.WriteString("  " + common.SeparatorStyle.Render(strings.Repeat(separatorRune, m.separatorWidth())) + "\n")
			continue
		}
		if i == m.cursor {
			b.WriteString(common.SelectedStyle.Render("> "+m.fit(item.Label)) + "\n")
		} else {
			b.WriteString("  " + common.ItemStyle.Render(m.fit(item.Label)) + "\n")
		}
	}

	b.WriteString(common.StatusBarStyle.Render(m.fit("↑/↓ move · enter select · esc cancel")))
	return b.String()
}

// fit truncates text to the terminal width, keeping two columns for the
// cursor prefix.
func (m Model) fit(text string) string {
	if m.width <= 2 {
		return text
	}
	max := m.width - 2
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Cut(text, 0, max)
}

func (m Model) separatorWidth() int {
	w := 24
	if m.width > 2 && m.width-4 < w {
		w = m.width - 4
	}
	if w < 1 {
		w = 1
	}
	return w
}
