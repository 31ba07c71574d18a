package style

// ColorLookup maps color tokens to display colors.
type ColorLookup interface {
	Resolve(token string) string
	ResolveDisabled(token string) string
}

// PercentConverter turns a named percentage into cells along an axis.
type PercentConverter interface {
	Convert(value float64, axis Axis) float64
}

const (
	weightBold   = "bold"
	weightNormal = "normal"
)

// ResolveColor returns the display color for token, using the disabled variant when disabled is set.
func ResolveColor(colors ColorLookup, token string, disabled bool) string {
	if disabled {
		return colors.ResolveDisabled(token)
	}
	return colors.Resolve(token)
}

// ResolveMargin picks a single margin value. The first set candidate wins, in
// this order: side cells, all-sides cells, side percentage, all-sides percentage.
// Zero and NaN both count as unset, so zero cannot be expressed through the cell inputs.
func ResolveMargin(conv PercentConverter, allPx, all, sidePx, side float64, axis Axis) float64 {
	if present(sidePx) {
		return sidePx
	}
	if present(allPx) {
		return allPx
	}
	if present(side) {
		if v := conv.Convert(side, axis); present(v) {
			return v
		}
	}
	if present(all) {
		if v := conv.Convert(all, axis); present(v) {
			return v
		}
	}
	return 0
}

// ResolveFontWeight returns the effective font weight given an explicit weight,
// the bold flag and the preset's own weight.
func ResolveFontWeight(weight string, bold bool, fallback string) string {
	if bold {
		return weightBold
	}
	if weight != "" && weight != weightNormal && weight != fallback {
		return weight
	}
	if fallback != "" {
		return fallback
	}
	return weightNormal
}

// DecorationLine maps the underline flag to a text decoration value.
func DecorationLine(underline bool) string {
	if underline {
		return "underline"
	}
	return "none"
}

// Edges holds one value per side.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Resolve computes all four margins. Every side converts along axis; callers pass
// AxisHeight for horizontal sides too.
func (m Margins) Resolve(conv PercentConverter, axis Axis) Edges {
	return Edges{
		Top:    ResolveMargin(conv, m.AllPx, m.All, m.TopPx, m.Top, axis),
		Right:  ResolveMargin(conv, m.AllPx, m.All, m.RightPx, m.Right, axis),
		Bottom: ResolveMargin(conv, m.AllPx, m.All, m.BottomPx, m.Bottom, axis),
		Left:   ResolveMargin(conv, m.AllPx, m.All, m.LeftPx, m.Left, axis),
	}
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if present(v) {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type passthroughColors struct{}

func (passthroughColors) Resolve(token string) string         { return token }
func (passthroughColors) ResolveDisabled(token string) string { return token }

type noConversion struct{}

func (noConversion) Convert(float64, Axis) float64 { return 0 }
