package theme

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/stylist/internal/style"
)

const (
	disabledBlend  = 0.6
	disabledChroma = 0.35
)

// Colors resolves color tokens against a theme. Tokens are, in order of lookup:
// custom names, semantic slots ("primary", "danger-muted", "surface-on"),
// shade tokens ("blue-500") and hex values. Anything else is returned unchanged
// so ANSI codes and terminal color names still work.
type Colors struct {
	theme  Theme
	custom map[string]string
}

var _ style.ColorLookup = (*Colors)(nil)

// NewColors creates a lookup over t with extra named tokens.
func NewColors(t Theme, custom map[string]string) *Colors {
	names := make(map[string]string, len(custom))
	for name, value := range custom {
		names[normalizeToken(name)] = value
	}
	return &Colors{theme: t, custom: names}
}

// Resolve maps a token to its display color.
func (c *Colors) Resolve(token string) string {
	norm := normalizeToken(token)
	if norm == "" {
		return ""
	}
	if value, ok := c.custom[norm]; ok {
		return c.resolveBuiltin(value)
	}
	return c.resolveBuiltin(token)
}

// ResolveDisabled maps a token to its washed-out disabled variant: the resolved
// color blended toward the neutral muted color and desaturated. Colors that are
// not hex fall back to the neutral muted color.
func (c *Colors) ResolveDisabled(token string) string {
	resolved := c.Resolve(token)
	if resolved == "" {
		return ""
	}

	muted := c.theme.pick(c.theme.Palette.Neutral.Muted)
	base, err := colorful.Hex(resolved)
	if err != nil {
		return muted
	}
	target, err := colorful.Hex(muted)
	if err != nil {
		return muted
	}

	h, chroma, l := base.BlendLab(target, disabledBlend).Hcl()
	return colorful.Hcl(h, chroma*disabledChroma, l).Clamped().Hex()
}

func (c *Colors) resolveBuiltin(token string) string {
	norm := normalizeToken(token)

	if set, ok := c.theme.Palette.Slot(norm); ok {
		return c.theme.pick(set.Base)
	}

	if name, variant, found := strings.Cut(norm, "-"); found {
		if set, ok := c.theme.Palette.Slot(name); ok {
			switch variant {
			case "muted":
				return c.theme.pick(set.Muted)
			case "contrast":
				return c.theme.pick(set.Contrast)
			case "on":
				return c.theme.pick(set.OnBase)
			}
		}
		if shades, ok := c.theme.Shades[name]; ok {
			if color, ok := shades.Shade(variant); ok {
				return color
			}
		}
	}

	if strings.HasPrefix(norm, "#") {
		if parsed, err := colorful.Hex(norm); err == nil {
			return parsed.Hex()
		}
	}

	return strings.TrimSpace(token)
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
