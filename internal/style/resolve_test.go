package style

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeColors struct{}

func (fakeColors) Resolve(token string) string {
	if token == "" {
		return ""
	}
	return "std:" + token
}

func (fakeColors) ResolveDisabled(token string) string {
	if token == "" {
		return ""
	}
	return "off:" + token
}

// scaleConverter multiplies by 2 on the height axis and 3 on the width axis.
type scaleConverter struct{}

func (scaleConverter) Convert(value float64, axis Axis) float64 {
	if axis == AxisWidth {
		return value * 3
	}
	return value * 2
}

func TestResolveColorDelegatesByDisabledState(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"primary", "danger", "#ff0000", "blue-500"} {
		assert.Equal(t, fakeColors{}.Resolve(token), ResolveColor(fakeColors{}, token, false))
		assert.Equal(t, fakeColors{}.ResolveDisabled(token), ResolveColor(fakeColors{}, token, true))
	}
}

func TestResolveMargin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		allPx, all, sidePx, side float64
		axis                     Axis
		want                     float64
	}{
		{name: "side cells only on height", sidePx: 5, axis: AxisHeight, want: 5},
		{name: "side cells only on width", sidePx: 5, axis: AxisWidth, want: 5},
		{name: "all percentage converts along axis", all: 2, axis: AxisHeight, want: 4},
		{name: "all percentage on width", all: 2, axis: AxisWidth, want: 6},
		{name: "side cells beat all cells", allPx: 7, sidePx: 5, axis: AxisHeight, want: 5},
		{name: "all cells beat side percentage", allPx: 7, side: 3, axis: AxisHeight, want: 7},
		{name: "side percentage beats all percentage", side: 3, all: 2, axis: AxisHeight, want: 6},
		{name: "everything absent", axis: AxisHeight, want: 0},
		{name: "NaN side cells fall through to all cells", sidePx: math.NaN(), allPx: 3, axis: AxisHeight, want: 3},
		{name: "NaN all cells fall through to percentage", allPx: math.NaN(), side: 2, axis: AxisHeight, want: 4},
		{name: "NaN percentages resolve to zero", side: math.NaN(), all: math.NaN(), axis: AxisHeight, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveMargin(scaleConverter{}, tt.allPx, tt.all, tt.sidePx, tt.side, tt.axis)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMarginsResolveAllSides(t *testing.T) {
	t.Parallel()

	m := Margins{All: 1, TopPx: 4, Left: 3}
	got := m.Resolve(scaleConverter{}, AxisHeight)
	require.Equal(t, Edges{Top: 4, Right: 2, Bottom: 2, Left: 6}, got)
}

func TestResolveFontWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weight   string
		bold     bool
		fallback string
		want     string
	}{
		{name: "bold wins", weight: "300", bold: true, fallback: "600", want: "bold"},
		{name: "bold wins without inputs", bold: true, want: "bold"},
		{name: "normal falls through to fallback", weight: "normal", fallback: "600", want: "600"},
		{name: "explicit differs from fallback", weight: "300", fallback: "600", want: "300"},
		{name: "explicit equal to fallback", weight: "600", fallback: "600", want: "600"},
		{name: "no fallback", weight: "", fallback: "", want: "normal"},
		{name: "explicit without fallback", weight: "500", want: "500"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ResolveFontWeight(tt.weight, tt.bold, tt.fallback))
		})
	}
}

func TestDecorationLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, "underline", DecorationLine(true))
	require.Equal(t, "none", DecorationLine(false))
}

func TestWrapFragmentsAreEmptyWhenUnset(t *testing.T) {
	t.Parallel()

	base := Fragment{FontFamily: "mono", LineHeight: 3}

	require.True(t, LetterSpacingFragment(0).IsZero())
	require.True(t, LineHeightFragment(0).IsZero())
	require.True(t, BackgroundColorFragment(fakeColors{}, "").IsZero())
	require.Equal(t, base, base.Merge(LineHeightFragment(0)))

	require.Equal(t, Fragment{LetterSpacing: 1.5}, LetterSpacingFragment(1.5))
	require.Equal(t, 2.0, base.Merge(LineHeightFragment(2)).LineHeight)
	require.Equal(t, "std:surface", BackgroundColorFragment(fakeColors{}, "surface").BackgroundColor)
}
