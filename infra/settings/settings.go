// Package settings reveals config settings for editing by opening the
// config file in the user's editor, positioned at the setting's line.
package settings

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"openpick/infra/config"
)

// EnvEditor edits the config file with $EDITOR (fallback: "vi"). The
// editor runs attached to the terminal; the caller's picker program has
// already exited by the time a setting is revealed.
type EnvEditor struct {
	Path string
}

// RevealSetting opens the config file at the line of the given setting
// key, scaffolding a config file first when none exists.
func (e EnvEditor) RevealSetting(ctx context.Context, key string) error {
	if err := e.ensureConfig(); err != nil {
		return err
	}

	data, err := os.ReadFile(e.Path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vi"
	}

	cmd := exec.CommandContext(ctx, editorCmd, fmt.Sprintf("+%d", settingLine(data, key)), e.Path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// ensureConfig writes an empty scaffold so the editor has the keys to
// fill in rather than a blank buffer.
func (e EnvEditor) ensureConfig() error {
	if _, err := os.Stat(e.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}
	return config.SaveFile(e.Path, config.File{
		Bindings: []config.BindingRecord{},
		Openers:  []config.OpenerDecl{},
	})
}

// settingLine returns the 1-based line of the first occurrence of the
// quoted key, or 1 when the key is not present.
func settingLine(data []byte, key string) int {
	quoted := fmt.Sprintf("%q", key)
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		if strings.Contains(sc.Text(), quoted) {
			return line
		}
	}
	return 1
}
