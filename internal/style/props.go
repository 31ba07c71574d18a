package style

import "math"

// Axis selects the viewport dimension a named margin is converted against.
type Axis string

const (
	AxisHeight Axis = "height"
	AxisWidth  Axis = "width"
)

// Family selects a text preset family.
type Family string

const (
	FamilyHeading   Family = "h"
	FamilyParagraph Family = "p"
)

// Margins holds the margin props shared by every builder. Px fields are absolute
// cells; the others are percentages converted along an axis. Zero means absent.
type Margins struct {
	All      float64 `yaml:"mAll" json:"mAll,omitempty"`
	AllPx    float64 `yaml:"mAllpx" json:"mAllpx,omitempty"`
	Top      float64 `yaml:"mT" json:"mT,omitempty"`
	TopPx    float64 `yaml:"mTpx" json:"mTpx,omitempty"`
	Right    float64 `yaml:"mR" json:"mR,omitempty"`
	RightPx  float64 `yaml:"mRpx" json:"mRpx,omitempty"`
	Bottom   float64 `yaml:"mB" json:"mB,omitempty"`
	BottomPx float64 `yaml:"mBpx" json:"mBpx,omitempty"`
	Left     float64 `yaml:"mL" json:"mL,omitempty"`
	LeftPx   float64 `yaml:"mLpx" json:"mLpx,omitempty"`
}

// ButtonProps are the inputs read by the button builder.
type ButtonProps struct {
	AlignSelf       string  `yaml:"alignSelf" json:"alignSelf,omitempty"`
	Disabled        bool    `yaml:"disabled" json:"disabled,omitempty"`
	BackgroundColor string  `yaml:"backgroundColor" json:"backgroundColor,omitempty"`
	Margins         `yaml:",inline"`
	PadAll          float64 `yaml:"padAll" json:"padAll,omitempty"`
	PadY            float64 `yaml:"padY" json:"padY,omitempty"`
	PadX            float64 `yaml:"padX" json:"padX,omitempty"`
	BorderWidth     float64 `yaml:"borderWidth" json:"borderWidth,omitempty"`
	Color           string  `yaml:"color" json:"color,omitempty"`
	BorderColor     string  `yaml:"borderColor" json:"borderColor,omitempty"`
}

// TouchableTextProps are the inputs read by the touchable text builder.
type TouchableTextProps struct {
	Color      string `yaml:"color" json:"color,omitempty"`
	Disabled   bool   `yaml:"disabled" json:"disabled,omitempty"`
	FontWeight string `yaml:"fontWeight" json:"fontWeight,omitempty"`
	FontFamily string `yaml:"fontFamily" json:"fontFamily,omitempty"`
	Margins    `yaml:",inline"`
	Header     bool `yaml:"header" json:"header,omitempty"`
	Size       int  `yaml:"size" json:"size,omitempty"`
	Bold       bool `yaml:"bold" json:"bold,omitempty"`
}

// Family returns the preset family selected by the Header flag.
func (p TouchableTextProps) Family() Family {
	if p.Header {
		return FamilyHeading
	}
	return FamilyParagraph
}

// TextProps are the inputs read by the full text builder.
type TextProps struct {
	TextAlign            string  `yaml:"textAlign" json:"textAlign,omitempty"`
	AlignSelf            string  `yaml:"alignSelf" json:"alignSelf,omitempty"`
	Color                string  `yaml:"color" json:"color,omitempty"`
	SuperScriptTextColor string  `yaml:"superScriptTextColor" json:"superScriptTextColor,omitempty"`
	Disabled             bool    `yaml:"disabled" json:"disabled,omitempty"`
	Size                 int     `yaml:"size" json:"size,omitempty"`
	FontWeight           string  `yaml:"fontWeight" json:"fontWeight,omitempty"`
	FontFamily           string  `yaml:"fontFamily" json:"fontFamily,omitempty"`
	Bold                 bool    `yaml:"bold" json:"bold,omitempty"`
	Margins              `yaml:",inline"`
	Underline            bool    `yaml:"underline" json:"underline,omitempty"`
	Flex                 float64 `yaml:"flex" json:"flex,omitempty"`
	LetterSpacing        float64 `yaml:"letterSpacing" json:"letterSpacing,omitempty"`
	LineHeight           float64 `yaml:"lineHeight" json:"lineHeight,omitempty"`
	BackgroundColor      string  `yaml:"backgroundColor" json:"backgroundColor,omitempty"`
	Family               Family  `yaml:"hOrP" json:"hOrP,omitempty"`
}

// present reports whether a numeric prop is set. NaN counts as unset.
func present(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}

func dropNaN(values ...*float64) {
	for _, v := range values {
		if math.IsNaN(*v) {
			*v = 0
		}
	}
}

// canonical returns m with NaN fields cleared so equal inputs compare equal.
func (m Margins) canonical() Margins {
	dropNaN(&m.All, &m.AllPx, &m.Top, &m.TopPx, &m.Right, &m.RightPx,
		&m.Bottom, &m.BottomPx, &m.Left, &m.LeftPx)
	return m
}

func (p ButtonProps) canonical() ButtonProps {
	p.Margins = p.Margins.canonical()
	dropNaN(&p.PadAll, &p.PadY, &p.PadX, &p.BorderWidth)
	return p
}

func (p TouchableTextProps) canonical() TouchableTextProps {
	p.Margins = p.Margins.canonical()
	return p
}

func (p TextProps) canonical() TextProps {
	p.Margins = p.Margins.canonical()
	dropNaN(&p.Flex, &p.LetterSpacing, &p.LineHeight)
	return p
}
