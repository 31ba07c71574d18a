package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects which side of each adaptive color is used.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
	ModeAuto  Mode = "auto"
)

// ParseMode validates a mode name. An empty name means ModeAuto.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", name)
	}
}

// Concrete resolves ModeAuto against the terminal background.
func (m Mode) Concrete() Mode {
	if m != ModeAuto {
		return m
	}
	if lipgloss.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

const paletteShadeCount = 10

// shadeSteps are the Tailwind-style shade names, lightest first.
var shadeSteps = [paletteShadeCount]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// PaletteShades is a ten-step color scale from lightest to darkest.
type PaletteShades [paletteShadeCount]string

// Shade returns the color for a step name such as "500".
func (ps PaletteShades) Shade(step string) (string, bool) {
	for i, name := range shadeSteps {
		if name == step {
			return ps[i], ps[i] != ""
		}
	}
	return "", false
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
//
//   - Base: the primary background or brand color
//   - OnBase: text color that contrasts with Base
//   - Muted: a desaturated variant of Base
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots available as color tokens.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// Slot returns the colour set registered under a semantic token name.
func (p Palette) Slot(name string) (ColourSet, bool) {
	switch name {
	case "primary":
		return p.Primary, true
	case "secondary":
		return p.Secondary, true
	case "surface":
		return p.Surface, true
	case "success":
		return p.Success, true
	case "warning":
		return p.Warning, true
	case "danger", "error":
		return p.Danger, true
	case "info":
		return p.Info, true
	case "neutral", "muted":
		return p.Neutral, true
	default:
		return ColourSet{}, false
	}
}

// Theme is an immutable palette plus the mode it is read in.
type Theme struct {
	Mode    Mode
	Palette Palette
	Shades  map[string]PaletteShades
}

// pick returns the side of an adaptive color matching the theme mode.
func (t Theme) pick(c lipgloss.AdaptiveColor) string {
	if t.Mode.Concrete() == ModeDark {
		return c.Dark
	}
	return c.Light
}

// WithMode returns a copy of the theme read in mode.
func (t Theme) WithMode(mode Mode) Theme {
	t.Mode = mode
	return t
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#94a3b8", "#475569"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	shades := map[string]PaletteShades{
		"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
		"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
		"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
		"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
		"yellow": {"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
		"purple": {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"},
		"cyan":   {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"},
	}

	return Theme{Mode: ModeLight, Palette: palette, Shades: shades}
}

// DarkTheme returns the default palette read in dark mode, with a deeper surface.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Mode = ModeDark

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	return theme
}

// ForMode returns DarkTheme for dark mode and DefaultTheme otherwise. ModeAuto is
// kept so adaptive colors follow the terminal.
func ForMode(mode Mode) Theme {
	if mode == ModeDark {
		return DarkTheme()
	}
	return DefaultTheme().WithMode(mode)
}
