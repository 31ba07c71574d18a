package style

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Fragment is a partial set of text attributes. Zero fields are unset and do not
// override anything when merged.
type Fragment struct {
	FontFamily      string  `yaml:"font_family" json:"fontFamily,omitempty"`
	FontSize        float64 `yaml:"font_size" json:"fontSize,omitempty"`
	FontWeight      string  `yaml:"font_weight" json:"fontWeight,omitempty"`
	LineHeight      float64 `yaml:"line_height" json:"lineHeight,omitempty"`
	LetterSpacing   float64 `yaml:"letter_spacing" json:"letterSpacing,omitempty"`
	BackgroundColor string  `yaml:"background_color" json:"backgroundColor,omitempty"`
}

// Merge returns f with every set field of over applied on top.
func (f Fragment) Merge(over Fragment) Fragment {
	if over.FontFamily != "" {
		f.FontFamily = over.FontFamily
	}
	if over.FontSize != 0 {
		f.FontSize = over.FontSize
	}
	if over.FontWeight != "" {
		f.FontWeight = over.FontWeight
	}
	if over.LineHeight != 0 {
		f.LineHeight = over.LineHeight
	}
	if over.LetterSpacing != 0 {
		f.LetterSpacing = over.LetterSpacing
	}
	if over.BackgroundColor != "" {
		f.BackgroundColor = over.BackgroundColor
	}
	return f
}

// IsZero reports whether no field is set.
func (f Fragment) IsZero() bool {
	return f == Fragment{}
}

// LetterSpacingFragment wraps a non-zero letter spacing; zero yields an empty fragment.
func LetterSpacingFragment(spacing float64) Fragment {
	if !present(spacing) {
		return Fragment{}
	}
	return Fragment{LetterSpacing: spacing}
}

// LineHeightFragment wraps a non-zero line height; zero yields an empty fragment.
func LineHeightFragment(height float64) Fragment {
	if !present(height) {
		return Fragment{}
	}
	return Fragment{LineHeight: height}
}

// BackgroundColorFragment wraps a resolved background color; an empty token yields
// an empty fragment.
func BackgroundColorFragment(colors ColorLookup, token string) Fragment {
	if token == "" {
		return Fragment{}
	}
	return Fragment{BackgroundColor: colors.Resolve(token)}
}

// ButtonStyle is the resolved "button" sub-style.
type ButtonStyle struct {
	AlignItems      string  `json:"alignItems"`
	JustifyContent  string  `json:"justifyContent"`
	AlignSelf       string  `json:"alignSelf,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	MarginTop       float64 `json:"marginTop"`
	MarginRight     float64 `json:"marginRight"`
	MarginBottom    float64 `json:"marginBottom"`
	MarginLeft      float64 `json:"marginLeft"`
	PaddingTop      float64 `json:"paddingTop"`
	PaddingBottom   float64 `json:"paddingBottom"`
	PaddingRight    float64 `json:"paddingRight"`
	PaddingLeft     float64 `json:"paddingLeft"`
	BorderWidth     float64 `json:"borderWidth,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
}

// TextStyle is the resolved "text" sub-style. A zero LineHeight means unset.
type TextStyle struct {
	Fragment
	Color              string  `json:"color,omitempty"`
	TextAlign          string  `json:"textAlign,omitempty"`
	AlignSelf          string  `json:"alignSelf,omitempty"`
	MarginTop          float64 `json:"marginTop"`
	MarginRight        float64 `json:"marginRight"`
	MarginBottom       float64 `json:"marginBottom"`
	MarginLeft         float64 `json:"marginLeft"`
	TextDecorationLine string  `json:"textDecorationLine,omitempty"`
	Flex               float64 `json:"flex,omitempty"`
}

// SuperScriptStyle is the fixed-position "superScriptText" sub-style.
type SuperScriptStyle struct {
	TextAlignVertical string  `json:"textAlignVertical"`
	FontSize          float64 `json:"fontSize"`
	ZIndex            int     `json:"zIndex"`
	Position          string  `json:"position"`
	Color             string  `json:"color,omitempty"`
	FontFamily        string  `json:"fontFamily,omitempty"`
}

// ButtonSheet is the memoized result of Resolver.Button. Sheets are shared and
// must be treated as read-only.
type ButtonSheet struct {
	Button ButtonStyle `json:"button"`
}

// TouchableTextSheet is the memoized result of Resolver.TouchableText.
type TouchableTextSheet struct {
	Text TextStyle `json:"text"`
}

// TextSheet is the memoized result of Resolver.Text.
type TextSheet struct {
	Text            TextStyle        `json:"text"`
	SuperScriptText SuperScriptStyle `json:"superScriptText"`
}

func (e Edges) cells() (int, int, int, int) {
	return cells(e.Top), cells(e.Right), cells(e.Bottom), cells(e.Left)
}

func cells(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}

// Lipgloss converts the button style for terminal rendering.
func (b ButtonStyle) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle().
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center)

	if b.BackgroundColor != "" {
		s = s.Background(lipgloss.Color(b.BackgroundColor))
	}
	s = s.Margin(Edges{b.MarginTop, b.MarginRight, b.MarginBottom, b.MarginLeft}.cells()).
		Padding(Edges{b.PaddingTop, b.PaddingRight, b.PaddingBottom, b.PaddingLeft}.cells())

	if b.BorderWidth > 0 {
		s = s.Border(borderForWidth(b.BorderWidth))
		if b.BorderColor != "" {
			s = s.BorderForeground(lipgloss.Color(b.BorderColor))
		}
	}
	return s
}

// Lipgloss converts the text style for terminal rendering.
func (t TextStyle) Lipgloss() lipgloss.Style {
	s := lipgloss.NewStyle().
		Margin(Edges{t.MarginTop, t.MarginRight, t.MarginBottom, t.MarginLeft}.cells()).
		Align(textPosition(t.TextAlign))

	if t.Color != "" {
		s = s.Foreground(lipgloss.Color(t.Color))
	}
	if t.BackgroundColor != "" {
		s = s.Background(lipgloss.Color(t.BackgroundColor))
	}
	switch weightClass(t.FontWeight) {
	case weightClassBold:
		s = s.Bold(true)
	case weightClassLight:
		s = s.Faint(true)
	}
	if t.TextDecorationLine == "underline" {
		s = s.Underline(true)
	}
	return s
}

// Lipgloss converts the superscript style for terminal rendering.
func (s SuperScriptStyle) Lipgloss() lipgloss.Style {
	out := lipgloss.NewStyle().AlignVertical(lipgloss.Top)
	if s.Color != "" {
		out = out.Foreground(lipgloss.Color(s.Color))
	}
	return out
}

func borderForWidth(width float64) lipgloss.Border {
	switch {
	case width >= 3:
		return lipgloss.DoubleBorder()
	case width >= 2:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func textPosition(align string) lipgloss.Position {
	switch align {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

type weightClassification int

const (
	weightClassRegular weightClassification = iota
	weightClassBold
	weightClassLight
)

func weightClass(weight string) weightClassification {
	switch weight {
	case weightBold, "bolder":
		return weightClassBold
	case "light", "lighter":
		return weightClassLight
	}
	n, err := strconv.Atoi(weight)
	if err != nil {
		return weightClassRegular
	}
	switch {
	case n >= 600:
		return weightClassBold
	case n <= 300:
		return weightClassLight
	default:
		return weightClassRegular
	}
}
