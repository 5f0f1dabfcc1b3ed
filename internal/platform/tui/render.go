package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/balloon-quiz/internal/core"
)

// Painter converts screen buffers to styled text for one output. Styles
// come from its lipgloss renderer, so an SSH session gets the color
// profile of the client terminal rather than the server's.
type Painter struct {
	renderer *lipgloss.Renderer
	help     lipgloss.Style

	mu     sync.RWMutex
	styles map[core.Color]lipgloss.Style
}

// NewPainter creates a painter for r. A nil renderer uses the process
// default, which matches the local terminal.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		help:     r.NewStyle().Foreground(lipgloss.Color(string(core.ColorMuted))),
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: r.NewStyle(),
		},
	}
}

var defaultPainter = NewPainter(nil)

// styleFor returns the cached foreground style for c. Colors that are not
// #rrggbb fall back to the terminal default.
func (p *Painter) styleFor(c core.Color) lipgloss.Style {
	p.mu.RLock()
	style, ok := p.styles[c]
	p.mu.RUnlock()
	if ok {
		return style
	}

	style = p.renderer.NewStyle()
	if c.Valid() {
		style = style.Foreground(lipgloss.Color(string(c)))
	}

	p.mu.Lock()
	p.styles[c] = style
	p.mu.Unlock()
	return style
}

// Help styles the help footer.
func (p *Painter) Help(text string) string {
	return p.help.Render(text)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				// The terminal draws wide runes across their continuation cell
				if !s.IsContinuation(x, y) {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(p.styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s for the local terminal.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Render(s)
}
