package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewShowsSamplesAndState(t *testing.T) {
	t.Parallel()

	view := NewModel(newTestResolver(), "Launch").View()

	require.Contains(t, view, "Stylist • p1")
	require.Contains(t, view, "Button")
	require.Contains(t, view, "Touchable text")
	require.Contains(t, view, "Launch")
	require.Contains(t, view, "○ disabled")
	require.Contains(t, view, "cache: 3 entries")
}

func TestViewReusesSheetsAcrossRedraws(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver()
	m := NewModel(resolver, "Launch")

	_ = m.View()
	first := resolver.Cache().Stats()
	view := m.View()
	second := resolver.Cache().Stats()

	require.Equal(t, first.Misses, second.Misses)
	require.Equal(t, first.Hits+3, second.Hits)
	require.Contains(t, view, "3 hits")
	require.Contains(t, view, " 50% hits")
}

func TestViewAfterToggleResolvesNewSheets(t *testing.T) {
	t.Parallel()

	resolver := newTestResolver()
	m := NewModel(resolver, "Launch")
	_ = m.View()

	updated, _ := m.Update(runes("d"))
	view := updated.(Model).View()

	require.Contains(t, view, "● disabled")
	require.Equal(t, 6, resolver.Cache().Len())
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	t.Parallel()

	updated, _ := NewModel(newTestResolver(), "Launch").Update(tea.QuitMsg{})
	require.Empty(t, updated.(Model).View())
}
