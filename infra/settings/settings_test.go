package settings

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"openpick/infra/config"
)

func TestSettingLine(t *testing.T) {
	data := []byte("{\n  \"openers\": [],\n  \"bindings\": []\n}\n")

	if got := settingLine(data, "bindings"); got != 3 {
		t.Fatalf("unexpected line for bindings: %d", got)
	}
	if got := settingLine(data, "openers"); got != 2 {
		t.Fatalf("unexpected line for openers: %d", got)
	}
	if got := settingLine(data, "absent"); got != 1 {
		t.Fatalf("missing key should fall back to line 1, got %d", got)
	}
}

func TestRevealSetting_ScaffoldsMissingConfig(t *testing.T) {
	t.Setenv("EDITOR", "true") // /usr/bin/true ignores its arguments
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	e := EnvEditor{Path: path}

	if err := e.RevealSetting(context.Background(), config.BindingsKey); err != nil {
		t.Fatalf("reveal failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected scaffolded config file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `"bindings"`) || !strings.Contains(text, `"openers"`) {
		t.Fatalf("scaffold missing keys: %q", text)
	}
}

func TestRevealSetting_KeepsExistingConfig(t *testing.T) {
	t.Setenv("EDITOR", "true")
	path := filepath.Join(t.TempDir(), "config.json")
	want := config.File{Bindings: []config.BindingRecord{{Hostname: "example.com", ID: "ff"}}}
	if err := config.SaveFile(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	e := EnvEditor{Path: path}

	if err := e.RevealSetting(context.Background(), config.BindingsKey); err != nil {
		t.Fatalf("reveal failed: %v", err)
	}

	got, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("load after reveal failed: %v", err)
	}
	if len(got.Bindings) != 1 || got.Bindings[0] != want.Bindings[0] {
		t.Fatalf("reveal must not rewrite an existing config: %#v", got)
	}
}
