package theme

import (
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylist/internal/style"
)

// DefaultViewport is used when the terminal size cannot be read.
var DefaultViewport = Viewport{Width: 80, Height: 24}

// Viewport converts percentage margins into terminal cells.
type Viewport struct {
	Width  int
	Height int
}

var _ style.PercentConverter = Viewport{}

// Convert returns value percent of the viewport dimension selected by axis.
func (v Viewport) Convert(value float64, axis style.Axis) float64 {
	if value == 0 {
		return 0
	}
	dim := v.Height
	if axis == style.AxisWidth {
		dim = v.Width
	}
	return value * float64(dim) / 100
}

// DetectViewport reads the size of the terminal behind fd, falling back to
// DefaultViewport when fd is not a terminal.
func DetectViewport(fd uintptr) Viewport {
	if !term.IsTerminal(int(fd)) {
		return DefaultViewport
	}
	width, height, err := term.GetSize(int(fd))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultViewport
	}
	return Viewport{Width: width, Height: height}
}
