package app

import (
	"context"
	"net/url"
	"sync"

	"openpick/domain"
)

// Opener is a handler capable of taking responsibility for opening a
// link outside the application.
type Opener interface {
	// ID returns the opener's stable identifier, referenced by bindings.
	ID() string

	// Label returns the human-readable name shown in the picker.
	Label() string

	// OpenExternal attempts to open href and reports whether the opener
	// took responsibility for it.
	OpenExternal(ctx context.Context, href string) (bool, error)
}

// OpenerSet is the bundle of openers one provider returned for one
// request. It owns whatever resources the provider allocated to produce
// the bundle; Dispose releases them and is safe to call more than once.
type OpenerSet struct {
	Openers []Opener

	once    sync.Once
	dispose func()
}

// NewOpenerSet creates a set over the given openers. dispose may be nil
// when the provider allocated nothing.
func NewOpenerSet(openers []Opener, dispose func()) *OpenerSet {
	return &OpenerSet{Openers: openers, dispose: dispose}
}

// Dispose releases the provider's resources. Only the first call has
// any effect.
func (s *OpenerSet) Dispose() {
	s.once.Do(func() {
		if s.dispose != nil {
			s.dispose()
		}
	})
}

// Provider supplies candidate openers for a URI. Returning a nil set or
// a set with no openers means "nothing from this provider for this
// resource".
type Provider interface {
	ProvideOpeners(ctx context.Context, u *url.URL) (*OpenerSet, error)
}

// BindingSource reads the user's hostname bindings. Implementations
// must read fresh on every call — the coordinator never caches.
type BindingSource interface {
	Bindings() ([]domain.Binding, error)

	// SettingKey names the setting holding the bindings, for the
	// "configure" flow.
	SettingKey() string
}

// SettingsEditor reveals a named setting for editing.
type SettingsEditor interface {
	RevealSetting(ctx context.Context, key string) error
}

// PickKind tags the three selectable cases a pick item can carry, plus
// the separator row the picker renders between them.
type PickKind int

const (
	// PickOpener delegates to the item's Opener.
	PickOpener PickKind = iota

	// PickUseDefault keeps the link with the caller's own behavior.
	PickUseDefault

	// PickConfigure opens the bindings setting for editing.
	PickConfigure

	// PickSeparator is a non-selectable visual divider.
	PickSeparator
)

// PickItem is one entry offered to the user when several openers
// compete for a link. Built fresh per request, never persisted.
type PickItem struct {
	Kind   PickKind
	Label  string
	Opener Opener // set only when Kind == PickOpener
}

// Picker presents labeled choices and returns the user's selection, or
// nil when the user dismissed the prompt.
type Picker interface {
	Pick(ctx context.Context, placeholder string, items []PickItem) (*PickItem, error)
}
