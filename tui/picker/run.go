package picker

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"openpick/app"
)

// TUIPicker implements app.Picker by running a one-shot Bubble Tea
// program on the terminal. Each Pick call owns its own program, so
// concurrent resolutions do not share UI state.
type TUIPicker struct{}

// Pick presents the items and blocks until the user selects one or
// dismisses the prompt. A nil item means dismissed.
func (TUIPicker) Pick(ctx context.Context, placeholder string, items []app.PickItem) (*app.PickItem, error) {
	p := tea.NewProgram(New(placeholder, items), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected picker model %T", final)
	}
	return m.Selection(), nil
}
