package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylist/internal/style"
)

// Model contains the Bubbletea state for the style preview.
type Model struct {
	resolver *style.Resolver
	keys     keyMap
	help     help.Model

	label     string
	disabled  bool
	bold      bool
	underline bool
	header    bool
	size      int

	width    int
	height   int
	quitting bool
}

// NewModel constructs a preview over resolver, drawing label in every sample.
func NewModel(resolver *style.Resolver, label string) Model {
	if label == "" {
		label = "Preview"
	}
	m := Model{
		resolver: resolver,
		keys:     defaultKeyMap(),
		help:     help.New(),
		label:    label,
		size:     1,
	}
	if sizes := m.sizes(); len(sizes) > 0 {
		m.size = sizes[0]
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Family returns the preset family currently previewed.
func (m Model) Family() style.Family {
	if m.header {
		return style.FamilyHeading
	}
	return style.FamilyParagraph
}

// Size returns the preset size currently previewed.
func (m Model) Size() int {
	return m.size
}

// ButtonProps returns the props the button sample resolves with.
func (m Model) ButtonProps() style.ButtonProps {
	return style.ButtonProps{
		Disabled:        m.disabled,
		BackgroundColor: "primary",
		Color:           "primary-muted",
		PadX:            2,
		BorderWidth:     1,
	}
}

// TouchableTextProps returns the props the touchable sample resolves with.
func (m Model) TouchableTextProps() style.TouchableTextProps {
	return style.TouchableTextProps{
		Color:    "primary",
		Disabled: m.disabled,
		Header:   m.header,
		Size:     m.size,
		Bold:     m.bold,
	}
}

// TextProps returns the props the text sample resolves with.
func (m Model) TextProps() style.TextProps {
	return style.TextProps{
		Color:                "surface-on",
		SuperScriptTextColor: "danger",
		Disabled:             m.disabled,
		Size:                 m.size,
		Bold:                 m.bold,
		Underline:            m.underline,
		Family:               m.Family(),
	}
}

// sizes lists the registered preset sizes for the current family in order.
func (m Model) sizes() []int {
	prefix := string(m.Family())
	var sizes []int
	for _, key := range m.resolver.Presets().Keys() {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil {
			sizes = append(sizes, n)
		}
	}
	sort.Ints(sizes)
	return sizes
}

// stepSize moves to the next or previous registered size, wrapping around.
func (m *Model) stepSize(delta int) {
	sizes := m.sizes()
	if len(sizes) == 0 {
		return
	}
	idx := sort.SearchInts(sizes, m.size)
	if idx >= len(sizes) || sizes[idx] != m.size {
		m.size = sizes[0]
		return
	}
	m.size = sizes[(idx+delta+len(sizes))%len(sizes)]
}
