package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	children  []Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		children:  children,
		direction: DirectionVertical,
		align:     lipgloss.Left,
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child against ctx.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx.WithConstraints(s.childConstraints(ctx.Constraints))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}

		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(childCtx)
		} else {
			view = child.View()
		}

		if view != "" {
			views = append(views, view)
		}
	}

	if len(views) == 0 {
		return ""
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(s.align, s.withGaps(views, strings.Repeat(" ", s.gap))...)
	} else {
		content = lipgloss.JoinVertical(s.align, s.withGaps(views, strings.Repeat("\n", s.gap-1))...)
	}

	return ctx.Constraints.apply(lipgloss.NewStyle()).Render(content)
}

// childConstraints divides the available width among horizontal children.
func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func (s *Stack) withGaps(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return result
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children, in rows or columns.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
