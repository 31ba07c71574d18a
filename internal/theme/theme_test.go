package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylist/internal/style"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeAuto},
		{in: "auto", want: ModeAuto},
		{in: " Dark ", want: ModeDark},
		{in: "light", want: ModeLight},
		{in: "sepia", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestDarkTheme(t *testing.T) {
	t.Parallel()

	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, ModeLight, light.Mode)
	assert.Equal(t, ModeDark, dark.Mode)
	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light, "dark theme should deepen the surface")
	assert.Equal(t, ModeDark, ForMode(ModeDark).Mode)
	assert.Equal(t, ModeLight, ForMode(ModeLight).Mode)
}

func TestPaletteShades(t *testing.T) {
	t.Parallel()

	blue := DefaultTheme().Shades["blue"]
	color, ok := blue.Shade("500")
	require.True(t, ok)
	require.Equal(t, "#3b82f6", color)

	_, ok = blue.Shade("950")
	require.False(t, ok)
}

func TestColorsResolve(t *testing.T) {
	t.Parallel()

	light := NewColors(DefaultTheme(), map[string]string{"Brand": "#FF8800", "alias": "danger"})
	dark := NewColors(DarkTheme(), nil)

	tests := []struct {
		name   string
		colors *Colors
		token  string
		want   string
	}{
		{name: "semantic light", colors: light, token: "primary", want: "#3b82f6"},
		{name: "semantic dark", colors: dark, token: "primary", want: "#60a5fa"},
		{name: "slot variant", colors: light, token: "danger-muted", want: "#dc2626"},
		{name: "on-base variant", colors: light, token: "primary-on", want: "#f8fafc"},
		{name: "shade", colors: light, token: "green-700", want: "#15803d"},
		{name: "hex normalized", colors: light, token: "#ABC", want: "#aabbcc"},
		{name: "custom hex", colors: light, token: "brand", want: "#ff8800"},
		{name: "custom alias", colors: light, token: "alias", want: "#ef4444"},
		{name: "ansi passthrough", colors: light, token: "212", want: "212"},
		{name: "unknown passthrough", colors: light, token: "chartreuse", want: "chartreuse"},
		{name: "empty", colors: light, token: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.colors.Resolve(tt.token))
		})
	}
}

func TestColorsResolveDisabled(t *testing.T) {
	t.Parallel()

	colors := NewColors(DefaultTheme(), nil)

	disabled := colors.ResolveDisabled("primary")
	require.NotEqual(t, colors.Resolve("primary"), disabled)

	got, err := colorful.Hex(disabled)
	require.NoError(t, err)
	base, _ := colorful.Hex(colors.Resolve("primary"))
	_, baseChroma, _ := base.Hcl()
	_, chroma, _ := got.Hcl()
	require.Less(t, chroma, baseChroma, "disabled colors are desaturated")

	require.Equal(t, "#94a3b8", colors.ResolveDisabled("212"), "non-hex colors fall back to neutral muted")
	require.Empty(t, colors.ResolveDisabled(""))
	require.Equal(t, disabled, style.ResolveColor(colors, "primary", true))
}

func TestViewportConvert(t *testing.T) {
	t.Parallel()

	v := Viewport{Width: 200, Height: 50}
	require.Equal(t, 10.0, v.Convert(20, style.AxisHeight))
	require.Equal(t, 40.0, v.Convert(20, style.AxisWidth))
	require.Zero(t, v.Convert(0, style.AxisWidth))
}

func TestDetectViewportFallsBack(t *testing.T) {
	t.Parallel()

	// A closed or non-terminal descriptor yields the default size.
	require.Equal(t, DefaultViewport, DetectViewport(^uintptr(0)>>1))
}

func TestPresetRegistry(t *testing.T) {
	t.Parallel()

	registry := NewPresetRegistry()
	require.Equal(t, []string{"h1", "h2", "h3", "h4", "h5", "h6", "p1", "p2", "p3", "p4"}, registry.Keys())

	h2, err := registry.Lookup(style.FamilyHeading, 2)
	require.NoError(t, err)
	require.Equal(t, "bold", h2.FontWeight)
}
