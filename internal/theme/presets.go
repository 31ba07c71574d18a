package theme

import "github.com/alexisbeaulieu97/stylist/internal/style"

const (
	fontDisplay = "display"
	fontBody    = "body"
)

// Presets returns the built-in heading (h1-h6) and paragraph (p1-p4) fragments.
func Presets() map[string]style.Fragment {
	return map[string]style.Fragment{
		"h1": {FontFamily: fontDisplay, FontSize: 32, FontWeight: "bold", LineHeight: 40},
		"h2": {FontFamily: fontDisplay, FontSize: 24, FontWeight: "bold", LineHeight: 32},
		"h3": {FontFamily: fontDisplay, FontSize: 20, FontWeight: "600", LineHeight: 28},
		"h4": {FontFamily: fontDisplay, FontSize: 18, FontWeight: "600", LineHeight: 24},
		"h5": {FontFamily: fontDisplay, FontSize: 16, FontWeight: "500", LineHeight: 22},
		"h6": {FontFamily: fontDisplay, FontSize: 14, FontWeight: "500", LineHeight: 20},
		"p1": {FontFamily: fontBody, FontSize: 16, FontWeight: "normal", LineHeight: 24},
		"p2": {FontFamily: fontBody, FontSize: 14, FontWeight: "normal", LineHeight: 20},
		"p3": {FontFamily: fontBody, FontSize: 12, FontWeight: "normal", LineHeight: 18},
		"p4": {FontFamily: fontBody, FontSize: 10, FontWeight: "300", LineHeight: 14, LetterSpacing: 0.5},
	}
}

// NewPresetRegistry returns a registry seeded with Presets.
func NewPresetRegistry() *style.Registry {
	registry := style.NewRegistry()
	registry.RegisterAll(Presets())
	return registry
}
