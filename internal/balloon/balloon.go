// Package balloon provides the drifting balloons of the quiz: their layout
// and decorative animation, the painter that draws them, and the Strategy
// interface implemented by the touch-capture renderers.
package balloon

import (
	"fmt"
	"time"

	"github.com/vovakirdan/balloon-quiz/internal/config"
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

// Balloon is one tappable answer floating on screen.
type Balloon struct {
	Subject quiz.Subject
	Slot    int        // Position in the bank, also the number key that picks it
	Color   core.Color // Assigned color while the round is open
	Shape   config.BalloonShape
	Drift   *Drift
}

// Label is the text painted on the balloon.
func (b *Balloon) Label() string {
	return fmt.Sprintf("%d %s", b.Slot+1, b.Subject.Name)
}

// Body returns the balloon's tappable body at its current position.
func (b *Balloon) Body() core.Rect {
	return b.BodyAt(b.Drift.Position())
}

// BodyAt returns the body rect for a balloon whose top-left is p.
func (b *Balloon) BodyAt(p core.Point) core.Rect {
	return core.NewRect(p.X, p.Y, b.Shape.Width, b.Shape.BodyHeight)
}

// Bounds returns the full area of the balloon including knot and thread.
func (b *Balloon) Bounds() core.Rect {
	p := b.Drift.Position()
	return core.NewRect(p.X, p.Y, b.Shape.Width, b.Shape.Height())
}

// Area is the part of the screen balloons drift through.
type Area struct {
	Width  int
	Top    int // First row below the header
	Bottom int // Screen height
}

// Layout creates one balloon per subject, each with its own drift.
// The drifts start stopped.
func Layout(bank quiz.Bank, cfg config.BalloonsConfig, area Area) []*Balloon {
	balloons := make([]*Balloon, bank.Len())
	for i := range balloons {
		b := &Balloon{
			Subject: bank.At(i),
			Slot:    i,
			Color:   cfg.Palette[i%len(cfg.Palette)],
			Shape:   cfg.Balloon,
		}
		b.Drift = NewDrift(MotionFor(i, cfg, area))
		balloons[i] = b
	}
	return balloons
}

// Relayout retargets every balloon's drift for a new area.
func Relayout(balloons []*Balloon, cfg config.BalloonsConfig, area Area) {
	for _, b := range balloons {
		b.Drift.Retarget(MotionFor(b.Slot, cfg, area))
	}
}

// MotionFor computes the drift path of the balloon in the given slot.
func MotionFor(slot int, cfg config.BalloonsConfig, area Area) Motion {
	d := cfg.Drift
	w := cfg.Balloon.Width
	sway := float64(d.SwayCells)

	startX := float64(area.Width)*(d.StartFrac+float64(slot)*d.StepFrac) - float64(w)/2
	maxX := float64(area.Width-w) - sway
	startX = core.ClampF(startX, sway, max(sway, maxX))

	return Motion{
		StartX: startX,
		Sway:   sway,
		Bottom: float64(area.Bottom),
		Top:    float64(area.Top - cfg.Balloon.Height()),
		Delay:  time.Duration(slot) * d.Stagger(),
		Rise:   d.Rise(),
		Half:   d.Sway(),
	}
}

// StartAll resumes every balloon's drift.
func StartAll(balloons []*Balloon) {
	for _, b := range balloons {
		b.Drift.Start()
	}
}

// StopAll freezes every balloon's drift.
func StopAll(balloons []*Balloon) {
	for _, b := range balloons {
		b.Drift.Stop()
	}
}

// AdvanceAll ticks every balloon's drift.
func AdvanceAll(balloons []*Balloon, dt time.Duration) {
	for _, b := range balloons {
		b.Drift.Advance(dt)
	}
}
