// Package inline implements the touch strategy where the balloon body
// itself is the tap target. Answered balloons become disabled targets.
package inline

import (
	"github.com/vovakirdan/balloon-quiz/internal/balloon"
	"github.com/vovakirdan/balloon-quiz/internal/config"
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
	"github.com/vovakirdan/balloon-quiz/internal/registry"
)

func init() {
	registry.Register(config.TouchInline, "balloon body is the tap target", func() balloon.Strategy {
		return New()
	})
}

// Strategy hit-tests taps against the balloons as they are drawn.
type Strategy struct{}

// New creates an inline strategy.
func New() *Strategy {
	return &Strategy{}
}

// Name returns the registry id.
func (s *Strategy) Name() string { return config.TouchInline }

// Mount is a no-op; targets move with the balloons.
func (s *Strategy) Mount([]*balloon.Balloon) {}

// Unmount is a no-op.
func (s *Strategy) Unmount() {}

// Draw paints the balloons.
func (s *Strategy) Draw(dst *core.Screen, balloons []*balloon.Balloon, st quiz.State) {
	balloon.DrawAll(dst, balloons, st)
}

// HitTest returns the topmost enabled balloon whose body contains p.
func (s *Strategy) HitTest(p core.Point, balloons []*balloon.Balloon, st quiz.State) (string, bool) {
	for i := len(balloons) - 1; i >= 0; i-- {
		b := balloons[i]
		if !balloon.Present(b, st).Tappable {
			continue
		}
		if b.Body().Contains(p.X, p.Y) {
			return b.Subject.Name, true
		}
	}
	return "", false
}
