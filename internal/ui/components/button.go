package components

import (
	"github.com/alexisbeaulieu97/stylist/internal/style"
)

// Button renders a label inside the resolved button sheet.
type Button struct {
	label string
	props style.ButtonProps
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the resolver in ctx.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	sheet := b.Sheet(ctx)
	return ctx.Constraints.apply(sheet.Button.Lipgloss()).Render(b.label)
}

// Sheet returns the memoized sheet the button renders with.
func (b *Button) Sheet(ctx RenderContext) *style.ButtonSheet {
	return ctx.Resolver.Button(b.props)
}

// WithProps replaces every styling prop.
func (b *Button) WithProps(props style.ButtonProps) *Button {
	b.props = props
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.props.Disabled = disabled
	return b
}

// WithBackground sets the background color token.
func (b *Button) WithBackground(token string) *Button {
	b.props.BackgroundColor = token
	return b
}

// WithBorder sets the border width and color token.
func (b *Button) WithBorder(width float64, token string) *Button {
	b.props.BorderWidth = width
	b.props.BorderColor = token
	return b
}

// WithPadding sets vertical and horizontal padding.
func (b *Button) WithPadding(vertical, horizontal float64) *Button {
	b.props.PadY = vertical
	b.props.PadX = horizontal
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// Props returns the button's styling props.
func (b *Button) Props() style.ButtonProps {
	return b.props
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.props.Disabled
}

// PrimaryButton creates a button on the primary slot.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithBackground("primary").WithPadding(0, 2)
}

// OutlineButton creates a bordered button without a fill.
func OutlineButton(label string, token string) *Button {
	return NewButton(label).WithBorder(1, token).WithPadding(0, 1)
}
