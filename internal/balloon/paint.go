package balloon

import (
	"strings"

	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

// Present returns the presentation of b for state st.
func Present(b *Balloon, st quiz.State) quiz.Presentation {
	return quiz.PresentationFor(b.Subject.Name, b.Color, st)
}

// Paint draws b in the presentation's color:
//
//	╭────────╮
//	│ 1 Cat  │
//	╰────────╯
//	    ▾
//	    │
func Paint(dst *core.Screen, b *Balloon, p quiz.Presentation) {
	if !b.Bounds().Intersects(core.NewRect(0, 0, dst.Width(), dst.Height())) {
		return
	}

	r := b.Body()
	c := p.Color
	inner := r.W - 2

	dst.SetColored(r.X, r.Y, '╭', c)
	dst.DrawHLine(r.X+1, r.Y, inner, '─', c)
	dst.SetColored(r.Right()-1, r.Y, '╮', c)

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.SetColored(r.X, y, '│', c)
		dst.DrawHLine(r.X+1, y, inner, ' ', c)
		dst.SetColored(r.Right()-1, y, '│', c)
	}

	dst.SetColored(r.X, r.Bottom()-1, '╰', c)
	dst.DrawHLine(r.X+1, r.Bottom()-1, inner, '─', c)
	dst.SetColored(r.Right()-1, r.Bottom()-1, '╯', c)

	label := fitLabel(b.Label(), inner)
	lx := r.X + 1 + (inner-core.TextWidth(label))/2
	dst.DrawTextColored(lx, r.Y+r.H/2, label, c)

	cx, _ := r.Center()
	dst.SetColored(cx, r.Bottom(), '▾', c)
	dst.DrawVLine(cx, r.Bottom()+1, b.Shape.Thread, '│', core.ColorThread)
}

// fitLabel trims the label to at most width columns.
func fitLabel(label string, width int) string {
	if core.TextWidth(label) <= width {
		return label
	}
	var sb strings.Builder
	used := 0
	for _, r := range label {
		w := core.TextWidth(string(r))
		if used+w > width {
			break
		}
		sb.WriteRune(r)
		used += w
	}
	return sb.String()
}
