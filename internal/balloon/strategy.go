package balloon

import (
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

// Strategy is a touch-capture renderer. Strategies differ only in how taps
// reach a balloon; color and tappability always come from Present, so two
// strategies given the same balloons and state draw the same picture and
// accept the same balloons.
type Strategy interface {
	// Name returns the registry id of the strategy.
	Name() string

	// Mount attaches the strategy to a set of balloons.
	Mount(balloons []*Balloon)

	// Unmount detaches from the balloons mounted last. Safe to call twice.
	Unmount()

	// Draw paints the balloons for state st, later balloons on top.
	Draw(dst *core.Screen, balloons []*Balloon, st quiz.State)

	// HitTest resolves a tap at p to the name of a tappable balloon.
	HitTest(p core.Point, balloons []*Balloon, st quiz.State) (string, bool)
}

// DrawAll paints every balloon with its presentation for st.
func DrawAll(dst *core.Screen, balloons []*Balloon, st quiz.State) {
	for _, b := range balloons {
		Paint(dst, b, Present(b, st))
	}
}
