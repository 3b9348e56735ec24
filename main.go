package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"openpick/app"
	"openpick/infra/command"
	"openpick/infra/config"
	"openpick/infra/logging"
	"openpick/infra/settings"
	"openpick/infra/webbrowser"
	"openpick/tui/picker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliOpen cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliInvalid, "missing url argument"
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	}

	if strings.HasPrefix(args[0], "-") {
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
	if len(args) > 1 {
		return cliInvalid, fmt.Sprintf("expected a single url, got: %s", strings.Join(args, " "))
	}
	return cliOpen, args[0]
}

func usage() string {
	return "Usage: openpick <url> | [--version|-version|-v] [--help|-h]"
}

// buildVersionInfo fills unset version fields from the binary's build
// info, for builds that skipped the ldflags.
func buildVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	vcs := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		vcs[s.Key] = s.Value
	}
	if v == "dev" {
		if mv := strings.TrimSpace(info.Main.Version); mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		if rev := strings.TrimSpace(vcs["vcs.revision"]); rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		if t := strings.TrimSpace(vcs["vcs.time"]); t != "" {
			d = t
		}
	}
	return v, c, d
}

func main() {
	mode, arg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := buildVersionInfo(version, commit, date)
		fmt.Printf("openpick %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", arg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Build the coordinator with its collaborators and the opener
	// providers: the built-in system browser plus the user's declared
	// command openers.
	coordinator := app.NewCoordinator(app.Deps{
		Bindings: config.BindingStore{Path: cfg.ConfigPath},
		Settings: settings.EnvEditor{Path: cfg.ConfigPath},
		Picker:   picker.TUIPicker{},
		Logger:   logger,
	})
	coordinator.RegisterProvider(webbrowser.Provider{})
	coordinator.RegisterProvider(command.Provider{Path: cfg.ConfigPath})

	// 3. Register into the dispatch registry and route the link.
	registry := app.NewRegistry(webbrowser.Launch, logger)
	registration := registry.RegisterHandler(coordinator)
	defer registration.Dispose()

	if err := registry.Open(context.Background(), arg); err != nil {
		fmt.Fprintf(os.Stderr, "openpick: %v\n", err)
		os.Exit(1)
	}
}
