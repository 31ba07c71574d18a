package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/stylist/internal/config"
	"github.com/alexisbeaulieu97/stylist/internal/logger"
	"github.com/alexisbeaulieu97/stylist/internal/style"
	"github.com/alexisbeaulieu97/stylist/internal/theme"
)

// AppContext bundles long-lived services created for a command.
type AppContext struct {
	Config   *config.Config
	Resolver *style.Resolver
	Logger   *logger.Logger
}

// detectViewport is swapped in tests so output does not depend on the terminal.
var detectViewport = func() theme.Viewport {
	return theme.DetectViewport(os.Stdout.Fd())
}

func newAppContext(s settings, logOut io.Writer) (*AppContext, error) {
	log, err := logger.New(logger.Options{Level: s.LogLevel, HumanReadable: true, Writer: logOut, Component: "stylist"})
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	cfg, err := loadThemeFile(s.ConfigPath)
	if err != nil {
		return nil, newCommandError("start", "loading theme file", err, "Check the theme file against the documented schema.")
	}

	opts, err := cfg.ResolverOptions(s.Mode, detectViewport(), log.WithFields(map[string]any{"mode": modeLabel(s.Mode)}))
	if err != nil {
		return nil, newCommandError("start", "selecting color mode", err, "Use one of light, dark or auto for --mode.")
	}

	log.Debug("resolver ready", map[string]any{
		"presets":     opts.Presets.Len(),
		"max_entries": cfg.Cache.MaxEntries,
		"mode":        s.Mode,
	})

	return &AppContext{Config: cfg, Resolver: style.NewResolver(opts), Logger: log}, nil
}

func modeLabel(mode string) string {
	if mode == "" {
		return "auto"
	}
	return mode
}

// loadThemeFile reads path, or the default theme file when path is empty. A
// missing default file yields the empty configuration.
func loadThemeFile(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	fallback, err := defaultThemePath()
	if err != nil {
		return &config.Config{}, nil
	}
	if _, statErr := os.Stat(fallback); errors.Is(statErr, os.ErrNotExist) {
		return &config.Config{}, nil
	}
	return config.Load(fallback)
}

func defaultThemePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "stylist", "theme.yaml"), nil
}
