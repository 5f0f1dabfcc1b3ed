package quiz

import "github.com/vovakirdan/balloon-quiz/internal/core"

// Colors a balloon takes once its round is answered.
const (
	ColorCorrect core.Color = "#22c55e"
	ColorWrong   core.Color = "#ef4444"
	ColorIdle    core.Color = "#94a3b8"
)

// Presentation is how a single balloon should look and behave.
type Presentation struct {
	Color    core.Color
	Tappable bool
}

// PresentationFor decides a balloon's display color and whether it accepts
// taps. It is the single rule every renderer uses.
func PresentationFor(name string, assigned core.Color, st State) Presentation {
	if !st.Answered {
		return Presentation{Color: assigned, Tappable: true}
	}

	switch {
	case name == st.Correct:
		return Presentation{Color: ColorCorrect}
	case name == st.Selected:
		return Presentation{Color: ColorWrong}
	default:
		return Presentation{Color: ColorIdle}
	}
}
