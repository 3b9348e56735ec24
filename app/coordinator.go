package app

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

// Picker labels. The "Default" entry hands the link back to the
// caller's own behavior; picking it suppresses the external open.
const (
	defaultItemLabel   = "Default"
	configureItemLabel = "Configure default opener..."
)

// Deps holds the coordinator's collaborators. Plain struct, not a DI
// container.
type Deps struct {
	Bindings BindingSource
	Settings SettingsEditor
	Picker   Picker
	Logger   *zap.Logger
}

// Coordinator decides which registered opener handles an external link:
// it gathers candidates from every registered provider, applies the
// user's per-hostname bindings, and falls back to an interactive pick.
//
// The only state carried between calls is the provider list; each
// OpenExternal call is an independent request/response cycle, and
// concurrent calls are fine.
type Coordinator struct {
	deps Deps

	mu        sync.Mutex
	nextToken int
	providers []providerEntry
}

type providerEntry struct {
	token    int
	provider Provider
}

// ProviderRegistration removes its provider registration when disposed.
type ProviderRegistration struct {
	once    sync.Once
	dispose func()
}

// Dispose removes the registration. Only the first call has any effect.
func (r *ProviderRegistration) Dispose() {
	r.once.Do(r.dispose)
}

// NewCoordinator creates a coordinator with all collaborators wired.
func NewCoordinator(deps Deps) *Coordinator {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Coordinator{deps: deps}
}

// RegisterProvider appends the provider to the ordered provider list.
// The same provider may be registered multiple times; each registration
// is independent and removed only by its own handle.
func (c *Coordinator) RegisterProvider(p Provider) *ProviderRegistration {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextToken++
	token := c.nextToken
	c.providers = append(c.providers, providerEntry{token: token, provider: p})

	return &ProviderRegistration{dispose: func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, e := range c.providers {
			if e.token == token {
				c.providers = append(c.providers[:i], c.providers[i+1:]...)
				return
			}
		}
	}}
}

func (c *Coordinator) snapshotProviders() []Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Provider, len(c.providers))
	for i, e := range c.providers {
		out[i] = e.provider
	}
	return out
}

// OpenExternal resolves an opener for href and delegates to it. It
// returns false when no opener is available, signalling the caller to
// fall back to its own default behavior. A true result means the link
// was handled — which includes the user dismissing the prompt or
// picking "Default", since the user was already interrupted and the
// open should not silently proceed elsewhere.
//
// Provider and opener failures propagate to the caller; the only
// guaranteed recovery is that every gathered opener set is disposed
// exactly once on every exit path.
func (c *Coordinator) OpenExternal(ctx context.Context, href string) (bool, error) {
	u, err := url.Parse(href)
	if err != nil {
		return false, fmt.Errorf("parsing link %q: %w", href, err)
	}

	var sets []*OpenerSet
	defer func() {
		for _, s := range sets {
			s.Dispose()
		}
	}()

	// Sequential, in registration order: each provider is fully awaited
	// before the next is asked.
	var openers []Opener
	for _, p := range c.snapshotProviders() {
		set, err := p.ProvideOpeners(ctx, u)
		if err != nil {
			return false, fmt.Errorf("querying opener provider: %w", err)
		}
		if set == nil {
			continue
		}
		if len(set.Openers) == 0 {
			set.Dispose()
			continue
		}
		sets = append(sets, set)
		openers = append(openers, set.Openers...)
	}

	if len(openers) == 0 {
		return false, nil
	}

	host := u.Hostname()
	if o, err := c.boundOpener(host, openers); err != nil {
		return false, err
	} else if o != nil {
		c.deps.Logger.Debug("opening via bound opener",
			zap.String("host", host),
			zap.String("opener", o.ID()))
		return o.OpenExternal(ctx, href)
	}

	return c.pickAndOpen(ctx, href, openers)
}

// boundOpener scans the bindings in stored order and returns the first
// gathered opener a binding resolves to. A hostname match whose id is
// not among the gathered openers does not stop the scan.
func (c *Coordinator) boundOpener(host string, openers []Opener) (Opener, error) {
	bindings, err := c.deps.Bindings.Bindings()
	if err != nil {
		return nil, fmt.Errorf("reading opener bindings: %w", err)
	}
	for _, b := range bindings {
		if !b.Matches(host) {
			continue
		}
		for _, o := range openers {
			if o.ID() == b.OpenerID {
				return o, nil
			}
		}
	}
	return nil, nil
}

func (c *Coordinator) pickAndOpen(ctx context.Context, href string, openers []Opener) (bool, error) {
	items := make([]PickItem, 0, len(openers)+3)
	for _, o := range openers {
		items = append(items, PickItem{Kind: PickOpener, Label: o.Label(), Opener: o})
	}
	items = append(items,
		PickItem{Kind: PickUseDefault, Label: defaultItemLabel},
		PickItem{Kind: PickSeparator},
		PickItem{Kind: PickConfigure, Label: configureItemLabel},
	)

	picked, err := c.deps.Picker.Pick(ctx, fmt.Sprintf("How would you like to open: %s", href), items)
	if err != nil {
		return false, fmt.Errorf("picking opener: %w", err)
	}
	if picked == nil {
		// Dismissed. The user was already prompted, so the open is
		// considered handled rather than falling through.
		return true, nil
	}

	switch picked.Kind {
	case PickUseDefault:
		return true, nil
	case PickConfigure:
		if err := c.deps.Settings.RevealSetting(ctx, c.deps.Bindings.SettingKey()); err != nil {
			return false, fmt.Errorf("revealing opener setting: %w", err)
		}
		return true, nil
	default:
		c.deps.Logger.Debug("opening via picked opener", zap.String("opener", picked.Opener.ID()))
		return picked.Opener.OpenExternal(ctx, href)
	}
}
