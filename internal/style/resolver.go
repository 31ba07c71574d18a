package style

import (
	"sync"

	"github.com/alexisbeaulieu97/stylist/internal/logger"
)

const (
	superScriptFontSize = 10
	superScriptZIndex   = 1000
)

// Options wires the collaborators a Resolver depends on. Nil fields fall back to
// passthrough colors, no percentage conversion, an empty registry and an
// unbounded cache.
type Options struct {
	Colors    ColorLookup
	Converter PercentConverter
	Presets   *Registry
	Cache     *Cache
	Logger    *logger.Logger
}

// Resolver builds memoized style sheets from props. Identical props return the
// same sheet pointer for as long as it stays cached, across goroutines too.
type Resolver struct {
	// build serializes cache misses so a key is only ever built once.
	build sync.Mutex

	colors    ColorLookup
	converter PercentConverter
	presets   *Registry
	cache     *Cache
	log       *logger.Logger
}

// presetKeyed pairs text props with the registry generation they were resolved against.
type presetKeyed[P comparable] struct {
	props      P
	generation uint64
}

// NewResolver constructs a Resolver from opts.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		colors:    opts.Colors,
		converter: opts.Converter,
		presets:   opts.Presets,
		cache:     opts.Cache,
		log:       opts.Logger,
	}
	if r.colors == nil {
		r.colors = passthroughColors{}
	}
	if r.converter == nil {
		r.converter = noConversion{}
	}
	if r.presets == nil {
		r.presets = NewRegistry()
	}
	if r.cache == nil {
		r.cache = NewCache(0)
	}
	return r
}

// Presets returns the registry the resolver reads text presets from.
func (r *Resolver) Presets() *Registry {
	return r.presets
}

// Cache returns the sheet cache owned by the resolver.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// BackgroundColor wraps a resolved background color token in a fragment.
func (r *Resolver) BackgroundColor(token string) Fragment {
	return BackgroundColorFragment(r.colors, token)
}

// Button resolves the button sheet for props.
func (r *Resolver) Button(props ButtonProps) *ButtonSheet {
	props = props.canonical()
	sheet, _ := memoize(r, "button", props, func() (*ButtonSheet, error) {
		return r.buildButton(props), nil
	})
	return sheet
}

// TouchableText resolves the touchable text sheet for props.
func (r *Resolver) TouchableText(props TouchableTextProps) (*TouchableTextSheet, error) {
	props = props.canonical()
	key := presetKeyed[TouchableTextProps]{props: props, generation: r.presets.Generation()}
	return memoize(r, "touchable_text", key, func() (*TouchableTextSheet, error) {
		return r.buildTouchableText(props)
	})
}

// Text resolves the text sheet, including its superscript sub-style, for props.
func (r *Resolver) Text(props TextProps) (*TextSheet, error) {
	props = props.canonical()
	key := presetKeyed[TextProps]{props: props, generation: r.presets.Generation()}
	return memoize(r, "text", key, func() (*TextSheet, error) {
		return r.buildText(props)
	})
}

func memoize[K comparable, S any](r *Resolver, builder string, key K, build func() (*S, error)) (*S, error) {
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*S), nil
	}

	r.build.Lock()
	defer r.build.Unlock()

	if cached, ok := r.cache.peek(key); ok {
		return cached.(*S), nil
	}

	sheet, err := build()
	if err != nil {
		r.log.Warn("style sheet not resolved", map[string]any{"builder": builder, "error": err.Error()})
		return nil, err
	}

	r.cache.Add(key, sheet)
	r.log.Debug("style sheet resolved", map[string]any{"builder": builder, "cached": r.cache.Len()})
	return sheet, nil
}

func (r *Resolver) buildButton(p ButtonProps) *ButtonSheet {
	margin := p.Margins.Resolve(r.converter, AxisHeight)
	vertical := firstNonZero(p.PadAll, p.PadY)
	horizontal := firstNonZero(p.PadAll, p.PadX)

	return &ButtonSheet{
		Button: ButtonStyle{
			AlignItems:      "center",
			JustifyContent:  "center",
			AlignSelf:       p.AlignSelf,
			BackgroundColor: ResolveColor(r.colors, p.BackgroundColor, p.Disabled),
			MarginTop:       margin.Top,
			MarginRight:     margin.Right,
			MarginBottom:    margin.Bottom,
			MarginLeft:      margin.Left,
			PaddingTop:      vertical,
			PaddingBottom:   vertical,
			PaddingRight:    horizontal,
			PaddingLeft:     horizontal,
			BorderWidth:     p.BorderWidth,
			BorderColor:     r.colors.Resolve(firstNonEmpty(p.BorderColor, p.Color)),
		},
	}
}

func (r *Resolver) buildTouchableText(p TouchableTextProps) (*TouchableTextSheet, error) {
	preset, err := r.presets.Lookup(p.Family(), p.Size)
	if err != nil {
		return nil, err
	}

	text := TextStyle{Fragment: preset}
	text.FontFamily = firstNonEmpty(p.FontFamily, preset.FontFamily)
	text.LineHeight = 0
	text.FontWeight = ResolveFontWeight(p.FontWeight, p.Bold, preset.FontWeight)
	text.Color = ResolveColor(r.colors, p.Color, p.Disabled)
	applyMargins(&text, p.Margins.Resolve(r.converter, AxisHeight))

	return &TouchableTextSheet{Text: text}, nil
}

func (r *Resolver) buildText(p TextProps) (*TextSheet, error) {
	preset, err := r.presets.Lookup(p.Family, p.Size)
	if err != nil {
		return nil, err
	}
	fontFamily := firstNonEmpty(p.FontFamily, preset.FontFamily)

	fragment := preset.
		Merge(LetterSpacingFragment(p.LetterSpacing)).
		Merge(LineHeightFragment(p.LineHeight)).
		Merge(r.BackgroundColor(p.BackgroundColor))

	text := TextStyle{
		Fragment:           fragment,
		TextAlign:          p.TextAlign,
		AlignSelf:          p.AlignSelf,
		Color:              ResolveColor(r.colors, p.Color, p.Disabled),
		TextDecorationLine: DecorationLine(p.Underline),
		Flex:               p.Flex,
	}
	text.FontWeight = ResolveFontWeight(p.FontWeight, p.Bold, preset.FontWeight)
	text.FontFamily = fontFamily
	applyMargins(&text, p.Margins.Resolve(r.converter, AxisHeight))

	return &TextSheet{
		Text: text,
		SuperScriptText: SuperScriptStyle{
			TextAlignVertical: "top",
			FontSize:          superScriptFontSize,
			ZIndex:            superScriptZIndex,
			Position:          "relative",
			Color:             ResolveColor(r.colors, p.SuperScriptTextColor, p.Disabled),
			FontFamily:        fontFamily,
		},
	}, nil
}

func applyMargins(text *TextStyle, margin Edges) {
	text.MarginTop = margin.Top
	text.MarginRight = margin.Right
	text.MarginBottom = margin.Bottom
	text.MarginLeft = margin.Left
}
