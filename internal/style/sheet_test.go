package style

import (
	"encoding/json"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSheetJSONUsesAttributeNames(t *testing.T) {
	t.Parallel()

	sheet := TextSheet{
		Text: TextStyle{
			Fragment:           Fragment{FontFamily: "serif", FontSize: 20},
			Color:              "#ffffff",
			TextDecorationLine: "none",
		},
		SuperScriptText: SuperScriptStyle{TextAlignVertical: "top", FontSize: 10, ZIndex: 1000, Position: "relative"},
	}

	data, err := json.Marshal(sheet)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	text := decoded["text"]
	assert.Equal(t, "serif", text["fontFamily"])
	assert.Equal(t, 20.0, text["fontSize"])
	assert.Equal(t, "none", text["textDecorationLine"])
	assert.NotContains(t, text, "lineHeight", "unset line height is omitted")
	assert.Equal(t, 1000.0, decoded["superScriptText"]["zIndex"])
}

func TestButtonStyleLipgloss(t *testing.T) {
	t.Parallel()

	s := ButtonStyle{
		BackgroundColor: "#3b82f6",
		MarginTop:       1.4,
		MarginLeft:      2.6,
		PaddingLeft:     1,
		PaddingRight:    1,
		BorderWidth:     2,
		BorderColor:     "#ef4444",
	}.Lipgloss()

	assert.Equal(t, lipgloss.Color("#3b82f6"), s.GetBackground())
	assert.Equal(t, 1, s.GetMarginTop())
	assert.Equal(t, 3, s.GetMarginLeft())
	assert.Equal(t, 1, s.GetPaddingLeft())
	assert.Equal(t, lipgloss.ThickBorder(), s.GetBorderStyle())
	assert.Equal(t, lipgloss.Center, s.GetAlignHorizontal())
}

func TestButtonStyleWithoutBorder(t *testing.T) {
	t.Parallel()

	s := ButtonStyle{}.Lipgloss()
	assert.Equal(t, lipgloss.Border{}, s.GetBorderStyle())
}

func TestTextStyleLipgloss(t *testing.T) {
	t.Parallel()

	bold := TextStyle{Fragment: Fragment{FontWeight: "700"}, Color: "#111111", TextDecorationLine: "underline", TextAlign: "right"}.Lipgloss()
	assert.True(t, bold.GetBold())
	assert.True(t, bold.GetUnderline())
	assert.Equal(t, lipgloss.Color("#111111"), bold.GetForeground())
	assert.Equal(t, lipgloss.Right, bold.GetAlignHorizontal())

	light := TextStyle{Fragment: Fragment{FontWeight: "300"}, TextDecorationLine: "none"}.Lipgloss()
	assert.True(t, light.GetFaint())
	assert.False(t, light.GetBold())
	assert.False(t, light.GetUnderline())
}

func TestCellsClampsAndRounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, cells(-3))
	assert.Equal(t, 2, cells(1.5))
	assert.Equal(t, 1, cells(1.49))
}
