package command

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"openpick/infra/config"
)

func TestExpandArgv(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{
			name: "placeholder replaced in place",
			argv: []string{"firefox", "--new-tab", "{url}"},
			want: []string{"firefox", "--new-tab", "https://example.com"},
		},
		{
			name: "placeholder inside argument",
			argv: []string{"sh", "-c", "open '{url}'"},
			want: []string{"sh", "-c", "open 'https://example.com'"},
		},
		{
			name: "no placeholder appends url",
			argv: []string{"chromium"},
			want: []string{"chromium", "https://example.com"},
		},
		{
			name: "empty argv stays empty",
			argv: nil,
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExpandArgv(tc.argv, "https://example.com"))
		})
	}
}

func TestOpenerLabelFallsBackToID(t *testing.T) {
	o := NewOpener(config.OpenerDecl{ID: "ff", Command: []string{"firefox"}})
	require.Equal(t, "ff", o.Label())

	o = NewOpener(config.OpenerDecl{ID: "ff", Label: "Firefox", Command: []string{"firefox"}})
	require.Equal(t, "Firefox", o.Label())
}

func writeConfig(t *testing.T, f config.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, config.SaveFile(path, f))
	return path
}

func TestProvider_FiltersByHost(t *testing.T) {
	path := writeConfig(t, config.File{
		Openers: []config.OpenerDecl{
			{ID: "work", Command: []string{"work-browser"}, Hosts: []string{"GitHub.com", "gitlab.com"}},
			{ID: "any", Command: []string{"any-browser"}},
			{ID: "broken", Hosts: []string{"github.com"}}, // no command, skipped
		},
	})
	p := Provider{Path: path}

	u, err := url.Parse("https://github.com/some/repo")
	require.NoError(t, err)

	set, err := p.ProvideOpeners(context.Background(), u)
	require.NoError(t, err)
	require.NotNil(t, set)
	require.Len(t, set.Openers, 2)
	require.Equal(t, "work", set.Openers[0].ID())
	require.Equal(t, "any", set.Openers[1].ID())

	u, err = url.Parse("https://example.org/")
	require.NoError(t, err)

	set, err = p.ProvideOpeners(context.Background(), u)
	require.NoError(t, err)
	require.NotNil(t, set)
	require.Len(t, set.Openers, 1)
	require.Equal(t, "any", set.Openers[0].ID())
}

func TestProvider_NoDeclarationsMeansNoSet(t *testing.T) {
	p := Provider{Path: filepath.Join(t.TempDir(), "missing.json")}

	u, err := url.Parse("https://example.com")
	require.NoError(t, err)

	set, err := p.ProvideOpeners(context.Background(), u)
	require.NoError(t, err)
	require.Nil(t, set)
}

func TestOpener_StartsCommandDetached(t *testing.T) {
	o := NewOpener(config.OpenerDecl{
		ID:      "noop",
		Command: []string{"true", "{url}"},
	})

	took, err := o.OpenExternal(context.Background(), "https://example.com")
	require.NoError(t, err)
	require.True(t, took)
}

func TestOpener_MissingProgramFails(t *testing.T) {
	o := NewOpener(config.OpenerDecl{
		ID:      "ghost",
		Command: []string{"openpick-no-such-program-xyz", "{url}"},
	})

	_, err := o.OpenExternal(context.Background(), "https://example.com")
	require.Error(t, err)
}
