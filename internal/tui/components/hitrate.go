package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylist/internal/style"
)

// HitRate renders the share of sheet lookups served from the cache.
type HitRate struct {
	bar progress.Model
}

// NewHitRate creates a hit rate gauge width cells wide.
func NewHitRate(width int) HitRate {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = width
	return HitRate{bar: bar}
}

// Ratio returns hits over lookups, or zero before the first lookup.
func Ratio(stats style.CacheStats) float64 {
	lookups := stats.Hits + stats.Misses
	if lookups == 0 {
		return 0
	}
	return math.Min(1.0, float64(stats.Hits)/float64(lookups))
}

// View renders the gauge for stats.
func (h HitRate) View(stats style.CacheStats) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3.0f%% hits", Ratio(stats)*100))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", h.bar.ViewAs(Ratio(stats)))
}
