package config

import (
	"github.com/alexisbeaulieu97/stylist/internal/style"
)

// Config represents a stylist theme file.
type Config struct {
	Version  string            `yaml:"version" validate:"omitempty,semver"`
	Mode     string            `yaml:"mode,omitempty" validate:"omitempty,oneof=light dark auto"`
	Cache    CacheSettings     `yaml:"cache,omitempty"`
	Viewport ViewportSettings  `yaml:"viewport,omitempty"`
	Colors   map[string]string `yaml:"colors,omitempty" validate:"omitempty,dive,keys,color_name,endkeys,required"`
	Presets  map[string]Preset `yaml:"presets,omitempty" validate:"omitempty,dive,keys,preset_key,endkeys"`
}

// CacheSettings bounds the sheet cache. Zero keeps every sheet.
type CacheSettings struct {
	MaxEntries int `yaml:"max_entries,omitempty" validate:"min=0,max=1000000"`
}

// ViewportSettings pins the size used for percentage margins. Zero values are
// replaced by the detected terminal size.
type ViewportSettings struct {
	Width  int `yaml:"width,omitempty" validate:"omitempty,min=1,max=10000"`
	Height int `yaml:"height,omitempty" validate:"omitempty,min=1,max=10000"`
}

// Preset is a text preset fragment declared in a theme file.
type Preset struct {
	FontFamily      string  `yaml:"font_family,omitempty"`
	FontSize        float64 `yaml:"font_size,omitempty" validate:"gte=0"`
	FontWeight      string  `yaml:"font_weight,omitempty" validate:"omitempty,font_weight"`
	LineHeight      float64 `yaml:"line_height,omitempty" validate:"gte=0"`
	LetterSpacing   float64 `yaml:"letter_spacing,omitempty"`
	BackgroundColor string  `yaml:"background_color,omitempty"`
}

// Fragment converts the preset into a style fragment.
func (p Preset) Fragment() style.Fragment {
	return style.Fragment{
		FontFamily:      p.FontFamily,
		FontSize:        p.FontSize,
		FontWeight:      p.FontWeight,
		LineHeight:      p.LineHeight,
		LetterSpacing:   p.LetterSpacing,
		BackgroundColor: p.BackgroundColor,
	}
}
