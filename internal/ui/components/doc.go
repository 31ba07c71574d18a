// Package components draws buttons and text in the terminal using sheets from
// a style.Resolver.
//
// # Rendering
//
// Components carry props only. The resolver, with its theme colors, viewport
// and preset registry, travels through RenderContext:
//
//	opts, _ := cfg.ResolverOptions("", theme.DetectViewport(os.Stdout.Fd()), log)
//	ctx := components.NewContext(style.NewResolver(opts))
//	output := components.PrimaryButton("Save").ViewWithContext(ctx)
//
// For simple cases, View() uses the light theme and built-in presets:
//
//	output := components.Heading("Dashboard", 1).View()
//
// Because sheets are memoized by props, redrawing an unchanged component does
// not rebuild its style.
//
// # Components
//
//   - Button: a label inside the button sheet (background, border, padding, margins)
//   - Text: preset-driven text with an optional superscript
//   - TouchableText: the label of a pressable element
//   - Stack: vertical or horizontal arrangement with a gap
//
// # Composition
//
//	content := components.VStack(
//		components.Heading("Settings", 2).Bold(),
//		components.HStack(
//			components.PrimaryButton("Save"),
//			components.OutlineButton("Cancel", "neutral"),
//		).WithGap(2),
//	).WithGap(1)
package components
