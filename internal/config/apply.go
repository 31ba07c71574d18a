package config

import (
	"github.com/alexisbeaulieu97/stylist/internal/logger"
	"github.com/alexisbeaulieu97/stylist/internal/style"
	"github.com/alexisbeaulieu97/stylist/internal/theme"
)

// Theme returns the palette selected by the configured mode. An override mode,
// when non-empty, wins over the file.
func (c *Config) Theme(override string) (theme.Theme, error) {
	name := c.Mode
	if override != "" {
		name = override
	}
	mode, err := theme.ParseMode(name)
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.ForMode(mode), nil
}

// ResolveViewport fills unset dimensions from detected.
func (c *Config) ResolveViewport(detected theme.Viewport) theme.Viewport {
	v := detected
	if c.Viewport.Width > 0 {
		v.Width = c.Viewport.Width
	}
	if c.Viewport.Height > 0 {
		v.Height = c.Viewport.Height
	}
	return v
}

// Registry returns the built-in presets with the file's presets layered on top.
// Preset background colors are resolved through colors.
func (c *Config) Registry(colors style.ColorLookup) *style.Registry {
	registry := theme.NewPresetRegistry()
	if len(c.Presets) == 0 {
		return registry
	}

	overrides := make(map[string]style.Fragment, len(c.Presets))
	for key, preset := range c.Presets {
		fragment := preset.Fragment()
		if colors != nil && fragment.BackgroundColor != "" {
			fragment.BackgroundColor = colors.Resolve(fragment.BackgroundColor)
		}
		overrides[key] = fragment
	}
	registry.RegisterAll(overrides)
	return registry
}

// ResolverOptions wires every collaborator a style.Resolver needs from the file.
func (c *Config) ResolverOptions(modeOverride string, detected theme.Viewport, log *logger.Logger) (style.Options, error) {
	t, err := c.Theme(modeOverride)
	if err != nil {
		return style.Options{}, err
	}

	colors := theme.NewColors(t, c.Colors)
	return style.Options{
		Colors:    colors,
		Converter: c.ResolveViewport(detected),
		Presets:   c.Registry(colors),
		Cache:     style.NewCache(c.Cache.MaxEntries),
		Logger:    log,
	}, nil
}
