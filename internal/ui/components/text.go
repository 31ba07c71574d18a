package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylist/internal/style"
)

// Text renders content with the resolved text sheet and an optional superscript.
type Text struct {
	content     string
	superscript string
	props       style.TextProps
}

// NewText creates a paragraph text component at the given preset size.
func NewText(content string, size int) *Text {
	return &Text{
		content: content,
		props:   style.TextProps{Family: style.FamilyParagraph, Size: size},
	}
}

// Heading creates a heading text component at the given preset size.
func Heading(content string, size int) *Text {
	return &Text{
		content: content,
		props:   style.TextProps{Family: style.FamilyHeading, Size: size},
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text. A missing preset renders the content
// unstyled followed by the error.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	out, err := t.Render(ctx)
	if err != nil {
		return renderError(t.content, err)
	}
	return out
}

// Render draws the text or returns the resolution error.
func (t *Text) Render(ctx RenderContext) (string, error) {
	sheet, err := ctx.Resolver.Text(t.props)
	if err != nil {
		return "", err
	}

	body := sheet.Text.Lipgloss()
	if t.superscript == "" {
		return ctx.Constraints.apply(body).Render(t.content), nil
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Inherit(body).UnsetMargins().Render(t.content),
		sheet.SuperScriptText.Lipgloss().Render(t.superscript),
	)
	margins := lipgloss.NewStyle().Margin(body.GetMargin())
	return ctx.Constraints.apply(margins).Render(line), nil
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithSuperscript attaches a superscript label drawn after the content.
func (t *Text) WithSuperscript(label, colorToken string) *Text {
	t.superscript = label
	t.props.SuperScriptTextColor = colorToken
	return t
}

// WithProps replaces every styling prop.
func (t *Text) WithProps(props style.TextProps) *Text {
	t.props = props
	return t
}

// WithColor sets the foreground color token.
func (t *Text) WithColor(token string) *Text {
	t.props.Color = token
	return t
}

// WithDisabled sets the disabled state.
func (t *Text) WithDisabled(disabled bool) *Text {
	t.props.Disabled = disabled
	return t
}

// Bold forces bold weight.
func (t *Text) Bold() *Text {
	t.props.Bold = true
	return t
}

// Underline draws the text underlined.
func (t *Text) Underline() *Text {
	t.props.Underline = true
	return t
}

// Props returns the text's styling props.
func (t *Text) Props() style.TextProps {
	return t.props
}

// TouchableText is the label of a pressable element.
type TouchableText struct {
	content string
	props   style.TouchableTextProps
}

// NewTouchableText creates touchable text at the given size. header selects
// heading presets.
func NewTouchableText(content string, size int, header bool) *TouchableText {
	return &TouchableText{
		content: content,
		props:   style.TouchableTextProps{Size: size, Header: header},
	}
}

// View renders the text with the default context.
func (t *TouchableText) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text. A missing preset renders the content
// unstyled followed by the error.
func (t *TouchableText) ViewWithContext(ctx RenderContext) string {
	sheet, err := ctx.Resolver.TouchableText(t.props)
	if err != nil {
		return renderError(t.content, err)
	}
	return ctx.Constraints.apply(sheet.Text.Lipgloss()).Render(t.content)
}

// WithProps replaces every styling prop.
func (t *TouchableText) WithProps(props style.TouchableTextProps) *TouchableText {
	t.props = props
	return t
}

// WithColor sets the foreground color token.
func (t *TouchableText) WithColor(token string) *TouchableText {
	t.props.Color = token
	return t
}

// Props returns the touchable text's styling props.
func (t *TouchableText) Props() style.TouchableTextProps {
	return t.props
}
