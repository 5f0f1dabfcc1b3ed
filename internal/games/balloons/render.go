package balloons

import (
	"github.com/vovakirdan/balloon-quiz/internal/core"
)

// Render draws the current view onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.View()

	if v.Summary != nil {
		renderModal(dst, layoutModal(g.screenW, g.screenH,
			[]string{v.Summary.Title, v.Summary.Score}, v.Summary.Button.Label))
		return
	}

	g.strategy.Draw(dst, g.balloons, g.machine.State())
	renderHeader(dst, v)

	if v.Feedback != nil {
		renderModal(dst, layoutModal(g.screenW, g.screenH,
			[]string{v.Feedback.Title, v.Feedback.Message}, v.Feedback.Button.Label))
	}
}

// renderHeader draws score and progress on the first row, the hint on the
// second and a rule under them, covering any balloon drifting behind.
func renderHeader(dst *core.Screen, v View) {
	w := dst.Width()
	dst.DrawRect(core.NewRect(0, 0, w, HeaderHeight), ' ', core.ColorDefault)

	dst.DrawTextColored(1, 0, v.Score, core.ColorAccent)
	dst.DrawTextColored(w-1-core.TextWidth(v.Progress), 0, v.Progress, core.ColorMuted)
	dst.DrawTextColored(1, 1, v.Hint, core.ColorText)
	dst.DrawHLine(0, HeaderHeight-1, w, '─', core.ColorBorder)
}

func renderModal(dst *core.Screen, m modal) {
	dst.DrawRect(m.Box, ' ', core.ColorDefault)
	dst.DrawBox(m.Box, core.ColorBorder)

	inner := m.Box.W - 2
	for i, line := range m.Lines {
		c := core.ColorMuted
		if i == 0 {
			c = core.ColorText
		}
		x := m.Box.X + 1 + (inner-core.TextWidth(line))/2
		dst.DrawTextColored(x, m.Box.Y+1+2*i, line, c)
	}

	b := m.Button
	dst.DrawTextColored(b.Rect.X, b.Rect.Y, "[ "+b.Label+" ]", core.ColorAccent)
}
