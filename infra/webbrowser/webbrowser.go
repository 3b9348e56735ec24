// Package webbrowser offers the operating system's default web browser
// as a built-in opener, and as the registry's fallback launcher.
package webbrowser

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/browser"

	"openpick/app"
)

// OpenerID identifies the built-in system browser opener in bindings.
const OpenerID = "system-browser"

// Opener opens links in the system's default browser.
type Opener struct{}

// ID returns the opener's stable identifier.
func (Opener) ID() string { return OpenerID }

// Label returns the name shown in the picker.
func (Opener) Label() string { return "System browser" }

// OpenExternal hands the link to the OS browser-launching mechanism.
// Focus behavior is platform-dependent; the browser may open in the
// background.
func (Opener) OpenExternal(_ context.Context, href string) (bool, error) {
	if err := browser.OpenURL(href); err != nil {
		return false, fmt.Errorf("launching system browser: %w", err)
	}
	return true, nil
}

// Provider offers the system browser for web links.
type Provider struct{}

// ProvideOpeners returns the built-in browser opener for http(s) links
// and nothing for other schemes.
func (Provider) ProvideOpeners(_ context.Context, u *url.URL) (*app.OpenerSet, error) {
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, nil
	}
	return app.NewOpenerSet([]app.Opener{Opener{}}, nil), nil
}

// Launch is the registry's default behavior for links no opener
// claimed.
func Launch(_ context.Context, href string) error {
	if err := browser.OpenURL(href); err != nil {
		return fmt.Errorf("launching system browser: %w", err)
	}
	return nil
}
