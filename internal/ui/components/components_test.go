package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylist/internal/style"
	"github.com/alexisbeaulieu97/stylist/internal/theme"
)

func testContext() RenderContext {
	return NewContext(style.NewResolver(style.Options{
		Colors:    theme.NewColors(theme.DefaultTheme(), nil),
		Converter: theme.Viewport{Width: 100, Height: 50},
		Presets:   theme.NewPresetRegistry(),
	}))
}

func TestButtonViewWithContext(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	button := PrimaryButton("Save")

	out := button.ViewWithContext(ctx)
	require.Contains(t, out, "Save")
	assert.Equal(t, lipgloss.Width("Save")+4, lipgloss.Width(out), "horizontal padding of two cells each side")

	sheet := button.Sheet(ctx)
	assert.Equal(t, "#3b82f6", sheet.Button.BackgroundColor)
	assert.Same(t, sheet, button.Sheet(ctx), "unchanged props reuse the memoized sheet")
}

func TestButtonBorderAndMargins(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	button := OutlineButton("Go", "danger").WithProps(style.ButtonProps{
		BorderWidth: 1,
		BorderColor: "danger",
		Margins:     style.Margins{TopPx: 1},
	})

	out := button.ViewWithContext(ctx)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4, "one margin row, two border rows, one label row")
	assert.Empty(t, strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[2], "Go")
}

func TestButtonDisabledWashesColor(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	enabled := PrimaryButton("Save").Sheet(ctx)
	disabled := PrimaryButton("Save").WithDisabled(true).Sheet(ctx)

	assert.NotEqual(t, enabled.Button.BackgroundColor, disabled.Button.BackgroundColor)
	assert.NotSame(t, enabled, disabled)
}

func TestTextRendersPreset(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	out, err := Heading("Title", 1).Render(ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}

func TestTextSuperscript(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	text := NewText("Price", 2).WithSuperscript("*", "danger")

	out, err := text.Render(ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "Price*")

	sheet, err := ctx.Resolver.Text(text.Props())
	require.NoError(t, err)
	assert.Equal(t, "#ef4444", sheet.SuperScriptText.Color)
	assert.Equal(t, 10.0, sheet.SuperScriptText.FontSize)
}

func TestTextMissingPreset(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	text := NewText("Lost", 9)

	_, err := text.Render(ctx)
	require.Error(t, err)

	out := text.ViewWithContext(ctx)
	assert.Contains(t, out, "Lost")
	assert.Contains(t, out, "p9")
}

func TestTouchableText(t *testing.T) {
	t.Parallel()

	ctx := testContext()
	assert.Contains(t, NewTouchableText("Tap", 3, true).WithColor("primary").ViewWithContext(ctx), "Tap")
	assert.Contains(t, NewTouchableText("Tap", 7, true).ViewWithContext(ctx), "h7")
}

func TestStackLayout(t *testing.T) {
	t.Parallel()

	ctx := testContext()

	vertical := VStack(NewText("a", 1), NewText("b", 1)).WithGap(1).ViewWithContext(ctx)
	assert.Equal(t, 3, lipgloss.Height(vertical))

	horizontal := HStack(NewText("a", 1), NewText("b", 1)).WithGap(2).ViewWithContext(ctx)
	assert.Equal(t, "a  b", strings.TrimRight(horizontal, " "))

	assert.Empty(t, VStack().ViewWithContext(ctx))
}

func TestConstraintsClampWidth(t *testing.T) {
	t.Parallel()

	ctx := testContext().WithConstraints(WithMaxWidth(4))
	out := NewText("abcdefgh", 1).ViewWithContext(ctx)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 4)
	}
}

func TestDefaultContext(t *testing.T) {
	t.Parallel()

	require.NotNil(t, DefaultContext().Resolver)
	assert.Contains(t, NewButton("ok").View(), "ok")
}

func TestDefaultContextSharesOneResolver(t *testing.T) {
	t.Parallel()

	require.Same(t, DefaultContext().Resolver, DefaultContext().Resolver)

	button := NewButton("again").WithPadding(3, 7)
	_ = button.View()
	require.Positive(t, DefaultContext().Resolver.Cache().Len())
	require.Same(t, button.Sheet(DefaultContext()), button.Sheet(DefaultContext()))
}
