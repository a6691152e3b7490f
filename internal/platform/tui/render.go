package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorcrush/internal/core"
)

// styleKey identifies a lipgloss style for a cell.
type styleKey struct {
	color core.Color
	attr  core.Attr
}

// styleCache holds one style per color/attribute pair seen so far.
// Rendering happens on the Bubble Tea goroutine of each program; SSH
// sessions each build their own renderer.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(color core.Color, attr core.Attr) lipgloss.Style {
	k := styleKey{color, attr}
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := color.ANSI(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	if attr&core.AttrBold != 0 {
		s = s.Bold(true)
	}
	if attr&core.AttrReverse != 0 {
		s = s.Reverse(true)
	}
	if attr&core.AttrFaint != 0 {
		s = s.Faint(true)
	}
	c[k] = s
	return s
}

// Renderer converts screen buffers to styled strings.
type Renderer struct {
	styles styleCache
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(styleCache)}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Attr != start.Attr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Color == core.ColorDefault && start.Attr == 0 {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.styles.get(start.Color, start.Attr).Render(run.String()))
		}
	}
	return sb.String()
}
