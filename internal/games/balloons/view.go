package balloons

import (
	"fmt"

	"github.com/vovakirdan/balloon-quiz/internal/balloon"
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

// Phase is which of the two screens is showing.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Button labels.
const (
	ButtonNext      = "Next"
	ButtonPlayAgain = "Play Again"
)

// BalloonView is one balloon as it should be shown this frame.
type BalloonView struct {
	Name     string
	Label    string
	Slot     int
	Color    core.Color
	Tappable bool
	Rect     core.Rect
}

// Button is a tappable control inside a modal.
type Button struct {
	Label string
	Rect  core.Rect
}

// Feedback is the modal shown after an answer.
type Feedback struct {
	Title   string
	Message string
	Button  Button
}

// Summary is the game-over screen.
type Summary struct {
	Title  string
	Score  string
	Button Button
}

// View describes everything on screen. Exactly one of the playing fields
// or Summary is meaningful, depending on Phase.
type View struct {
	Phase Phase

	// Playing
	Score    string
	Progress string
	Hint     string
	Balloons []BalloonView
	Feedback *Feedback

	// Game over
	Summary *Summary
}

// View builds the description of the current screen.
func (g *Game) View() View {
	st := g.machine.State()

	if st.Over {
		sum := &Summary{
			Title: "Game Over!",
			Score: fmt.Sprintf("Final Score: %d", st.Score),
		}
		sum.Button = layoutModal(g.screenW, g.screenH, []string{sum.Title, sum.Score}, ButtonPlayAgain).Button
		return View{Phase: PhaseGameOver, Summary: sum}
	}

	v := View{
		Phase:    PhasePlaying,
		Score:    fmt.Sprintf("Score: %d", st.Score),
		Progress: fmt.Sprintf("Question %d/%d", st.Index+1, g.machine.Bank().Len()),
		Hint:     "Hint: " + g.machine.Current().Hint,
		Balloons: make([]BalloonView, len(g.balloons)),
	}

	for i, b := range g.balloons {
		p := balloon.Present(b, st)
		v.Balloons[i] = BalloonView{
			Name:     b.Subject.Name,
			Label:    b.Label(),
			Slot:     b.Slot,
			Color:    p.Color,
			Tappable: p.Tappable,
			Rect:     b.Body(),
		}
	}

	if st.Answered {
		o := outcomeOf(st)
		fb := &Feedback{Title: o.Title(), Message: o.Message()}
		fb.Button = layoutModal(g.screenW, g.screenH, []string{fb.Title, fb.Message}, ButtonNext).Button
		v.Feedback = fb
	}
	return v
}

// outcomeOf rebuilds the outcome of an answered round from its state.
func outcomeOf(st quiz.State) quiz.Outcome {
	o := quiz.Outcome{Verdict: quiz.VerdictIncorrect, Answer: st.Correct}
	if st.Selected == st.Correct {
		o.Verdict = quiz.VerdictCorrect
	}
	return o
}

// modal is a centred box with text lines above a button.
type modal struct {
	Box    core.Rect
	Lines  []string
	Button Button
}

// layoutModal centres a box for lines and a button on a w x h screen:
//
//	╭──────────────────╮
//	│     Correct!     │
//	│                  │
//	│    Great job!    │
//	│                  │
//	│     [ Next ]     │
//	╰──────────────────╯
func layoutModal(w, h int, lines []string, label string) modal {
	text := "[ " + label + " ]"
	inner := core.TextWidth(text)
	for _, l := range lines {
		inner = max(inner, core.TextWidth(l))
	}
	inner += 4

	bw := inner + 2
	bh := 2*len(lines) + 3
	box := core.NewRect(
		core.Clamp((w-bw)/2, 0, max(w-bw, 0)),
		core.Clamp((h-bh)/2, 0, max(h-bh, 0)),
		bw, bh,
	)

	bx := box.X + 1 + (inner-core.TextWidth(text))/2
	return modal{
		Box:   box,
		Lines: lines,
		Button: Button{
			Label: label,
			Rect:  core.NewRect(bx, box.Bottom()-2, core.TextWidth(text), 1),
		},
	}
}
