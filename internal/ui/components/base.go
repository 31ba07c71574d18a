package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylist/internal/style"
	"github.com/alexisbeaulieu97/stylist/internal/theme"
)

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive layout context.
// This is an advanced interface; most components only need Renderable.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// apply clamps style to the constraints. Zero means unlimited.
func (c Constraints) apply(s lipgloss.Style) lipgloss.Style {
	if c.MaxWidth > 0 {
		s = s.MaxWidth(c.MaxWidth)
	}
	if c.MaxHeight > 0 {
		s = s.MaxHeight(c.MaxHeight)
	}
	return s
}

// RenderContext carries the resolver and layout limits to components during
// rendering. Components never hold a resolver themselves, so one component
// tree can be drawn against several themes.
type RenderContext struct {
	Resolver    *style.Resolver
	Constraints Constraints
}

// defaultResolver is shared by every View call so sheets stay memoized between redraws.
var defaultResolver = sync.OnceValue(func() *style.Resolver {
	return style.NewResolver(style.Options{
		Colors:    theme.NewColors(theme.DefaultTheme(), nil),
		Converter: theme.DefaultViewport,
		Presets:   theme.NewPresetRegistry(),
	})
})

// DefaultContext returns a render context backed by the light theme, the
// built-in presets and the default viewport. Every call shares one resolver.
func DefaultContext() RenderContext {
	return NewContext(defaultResolver())
}

// NewContext returns an unconstrained context for resolver.
func NewContext(resolver *style.Resolver) RenderContext {
	return RenderContext{Resolver: resolver, Constraints: Unconstrained()}
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// renderError draws content unstyled with the resolution failure appended.
func renderError(content string, err error) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, content, " ", lipgloss.NewStyle().Faint(true).Render("("+err.Error()+")"))
}
