package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"openpick/domain"
)

// BindingsKey is the setting key holding the hostname bindings inside
// the config file. The "Configure default opener..." flow reveals it.
const BindingsKey = "bindings"

// Config holds application-level configuration.
type Config struct {
	ConfigPath string // Path to the openers/bindings config file
	LogPath    string // Optional debug log file; empty disables logging
}

// Load reads configuration from environment variables.
//
//	OPENPICK_CONFIG — path to the config file (default: ~/.config/openpick/config.json)
//	OPENPICK_LOG    — path to a debug log file (default: disabled)
func Load() (Config, error) {
	path := os.Getenv("OPENPICK_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "openpick", "config.json")
	}

	return Config{
		ConfigPath: path,
		LogPath:    os.Getenv("OPENPICK_LOG"),
	}, nil
}

// BindingRecord is one hostname binding as written in the config file.
type BindingRecord struct {
	Hostname string `json:"hostname"`
	ID       string `json:"id"`
}

// OpenerDecl declares a command-backed opener in the config file. The
// command is an argv list; every "{url}" argument is replaced with the
// link, and the link is appended when no placeholder is present. An
// empty Hosts list offers the opener for every hostname.
type OpenerDecl struct {
	ID      string   `json:"id"`
	Label   string   `json:"label,omitempty"`
	Command []string `json:"command"`
	Hosts   []string `json:"hosts,omitempty"`
}

// File is the on-disk config: the ordered hostname bindings plus the
// user-declared command openers.
type File struct {
	Bindings []BindingRecord `json:"bindings"`
	Openers  []OpenerDecl    `json:"openers"`
}

// LoadFile reads the config file. A missing file is not an error and
// yields an empty config.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return f, nil
}

// SaveFile writes the config file, creating parent directories as
// needed.
func SaveFile(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

// BindingStore reads hostname bindings from the config file. It reads
// fresh on every call so edits apply to the next link without a
// restart.
type BindingStore struct {
	Path string
}

// Bindings returns the stored bindings in file order.
func (s BindingStore) Bindings() ([]domain.Binding, error) {
	f, err := LoadFile(s.Path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Binding, len(f.Bindings))
	for i, r := range f.Bindings {
		out[i] = domain.Binding{Hostname: r.Hostname, OpenerID: r.ID}
	}
	return out, nil
}

// SettingKey returns the key of the bindings setting.
func (s BindingStore) SettingKey() string {
	return BindingsKey
}
