package app

import (
	"context"
	"net/url"

	"openpick/domain"
)

type stubOpener struct {
	id     string
	label  string
	result bool
	err    error

	calls    int
	lastHref string
}

func (o *stubOpener) ID() string    { return o.id }
func (o *stubOpener) Label() string { return o.label }

func (o *stubOpener) OpenExternal(_ context.Context, href string) (bool, error) {
	o.calls++
	o.lastHref = href
	return o.result, o.err
}

// trackedSet wraps an OpenerSet with a dispose counter.
func trackedSet(openers ...Opener) (*OpenerSet, *int) {
	n := new(int)
	return NewOpenerSet(openers, func() { *n++ }), n
}

// funcProvider adapts a function to the Provider interface.
type funcProvider func(ctx context.Context, u *url.URL) (*OpenerSet, error)

func (f funcProvider) ProvideOpeners(ctx context.Context, u *url.URL) (*OpenerSet, error) {
	return f(ctx, u)
}

// setProvider returns the same set on every query.
func setProvider(set *OpenerSet) funcProvider {
	return func(context.Context, *url.URL) (*OpenerSet, error) {
		return set, nil
	}
}

// stubPicker answers with choose applied to the offered items; a nil
// choose dismisses the prompt.
type stubPicker struct {
	choose func(items []PickItem) *PickItem
	err    error

	calls       int
	placeholder string
	items       []PickItem
}

func (p *stubPicker) Pick(_ context.Context, placeholder string, items []PickItem) (*PickItem, error) {
	p.calls++
	p.placeholder = placeholder
	p.items = items
	if p.err != nil {
		return nil, p.err
	}
	if p.choose == nil {
		return nil, nil
	}
	return p.choose(items), nil
}

func chooseKind(kind PickKind) func([]PickItem) *PickItem {
	return func(items []PickItem) *PickItem {
		for _, it := range items {
			if it.Kind == kind {
				item := it
				return &item
			}
		}
		return nil
	}
}

func chooseLabel(label string) func([]PickItem) *PickItem {
	return func(items []PickItem) *PickItem {
		for _, it := range items {
			if it.Label == label {
				item := it
				return &item
			}
		}
		return nil
	}
}

type stubSettings struct {
	err      error
	revealed []string
}

func (s *stubSettings) RevealSetting(_ context.Context, key string) error {
	s.revealed = append(s.revealed, key)
	return s.err
}

type stubBindings struct {
	bindings []domain.Binding
	err      error
}

func (s stubBindings) Bindings() ([]domain.Binding, error) { return s.bindings, s.err }
func (s stubBindings) SettingKey() string                  { return "bindings" }

// newTestCoordinator wires a coordinator over stubs and returns the
// picker and settings stubs for inspection.
func newTestCoordinator(bindings stubBindings, choose func([]PickItem) *PickItem) (*Coordinator, *stubPicker, *stubSettings) {
	picker := &stubPicker{choose: choose}
	settings := &stubSettings{}
	c := NewCoordinator(Deps{
		Bindings: bindings,
		Settings: settings,
		Picker:   picker,
	})
	return c, picker, settings
}
