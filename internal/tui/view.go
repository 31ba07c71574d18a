package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylist/internal/style"
	widgets "github.com/alexisbeaulieu97/stylist/internal/tui/components"
	"github.com/alexisbeaulieu97/stylist/internal/ui/components"
)

const hitRateWidth = 30

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.NewContext(m.resolver)
	if m.width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(m.width))
	}

	key := style.PresetKey(m.Family(), m.size)
	button := components.NewButton(m.label).WithProps(m.ButtonProps()).ViewWithContext(ctx)
	touchable := components.NewTouchableText(m.label, m.size, m.header).WithProps(m.TouchableTextProps()).ViewWithContext(ctx)
	text := components.NewText(m.label, m.size).WithProps(m.TextProps()).WithSuperscript("*", "danger").ViewWithContext(ctx)
	stats := m.resolver.Cache().Stats()

	sections := []string{
		titleStyle.Render(fmt.Sprintf("Stylist • %s", key)),

		sectionStyle.Render("Button"),
		button,

		sectionStyle.Render("Touchable text"),
		touchable,

		sectionStyle.Render("Text"),
		text,

		sectionStyle.Render("State"),
		strings.Join([]string{
			flag("disabled", m.disabled),
			flag("bold", m.bold),
			flag("underline", m.underline),
			flag("heading", m.header),
		}, "  "),
		statusStyle.Render(cacheLine(stats)),
		widgets.NewHitRate(hitRateWidth).View(stats),

		footerStyle.Render(m.help.View(m.keys)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func cacheLine(stats style.CacheStats) string {
	return fmt.Sprintf("cache: %d entries · %d hits · %d misses · %d evictions",
		stats.Entries, stats.Hits, stats.Misses, stats.Evictions)
}
