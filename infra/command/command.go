// Package command turns opener declarations from the config file into
// openers that launch an external program.
package command

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"openpick/app"
	"openpick/domain"
	"openpick/infra/config"
)

// Placeholder is replaced with the link inside a declared command's
// argv. Without it the link is appended as the last argument.
const Placeholder = "{url}"

// Opener runs one declared command for a link. The program is started
// and released, not awaited, so a long-lived browser does not block the
// request.
type Opener struct {
	decl config.OpenerDecl
}

// NewOpener creates an opener from a declaration.
func NewOpener(decl config.OpenerDecl) *Opener {
	return &Opener{decl: decl}
}

// ID returns the declared identifier.
func (o *Opener) ID() string { return o.decl.ID }

// Label returns the declared label, falling back to the id.
func (o *Opener) Label() string {
	if o.decl.Label != "" {
		return o.decl.Label
	}
	return o.decl.ID
}

// OpenExternal starts the declared command with the link substituted
// into its argv.
func (o *Opener) OpenExternal(ctx context.Context, href string) (bool, error) {
	argv := ExpandArgv(o.decl.Command, href)
	if len(argv) == 0 {
		return false, fmt.Errorf("opener %s: %w", o.decl.ID, domain.ErrEmptyCommand)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return false, fmt.Errorf("launching opener %s: %w", o.decl.ID, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return false, fmt.Errorf("detaching opener %s: %w", o.decl.ID, err)
	}
	return true, nil
}

// ExpandArgv substitutes href for every Placeholder argument, appending
// href when the argv carries no placeholder.
func ExpandArgv(argv []string, href string) []string {
	if len(argv) == 0 {
		return nil
	}
	out := make([]string, len(argv))
	replaced := false
	for i, a := range argv {
		if strings.Contains(a, Placeholder) {
			out[i] = strings.ReplaceAll(a, Placeholder, href)
			replaced = true
		} else {
			out[i] = a
		}
	}
	if !replaced {
		out = append(out, href)
	}
	return out
}

// Provider offers the config file's declared openers, filtered by the
// request's hostname. Declarations are re-read on every request so a
// config edit applies to the next link.
type Provider struct {
	Path string
}

// ProvideOpeners returns openers for every declaration whose host
// allowlist admits the request's hostname.
func (p Provider) ProvideOpeners(_ context.Context, u *url.URL) (*app.OpenerSet, error) {
	f, err := config.LoadFile(p.Path)
	if err != nil {
		return nil, err
	}

	host := u.Hostname()
	var out []app.Opener
	for _, d := range f.Openers {
		if len(d.Command) == 0 {
			continue
		}
		if !hostAllowed(d.Hosts, host) {
			continue
		}
		out = append(out, NewOpener(d))
	}
	if len(out) == 0 {
		return nil, nil
	}
	return app.NewOpenerSet(out, nil), nil
}

func hostAllowed(hosts []string, host string) bool {
	if len(hosts) == 0 {
		return true
	}
	for _, h := range hosts {
		if (domain.Binding{Hostname: h}).Matches(host) {
			return true
		}
	}
	return false
}
