// Package overlay implements the touch strategy where taps land on
// transparent targets laid over the balloons. The targets follow the
// balloons through drift position listeners and only exist while the
// balloons are tappable.
package overlay

import (
	"github.com/vovakirdan/balloon-quiz/internal/balloon"
	"github.com/vovakirdan/balloon-quiz/internal/config"
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
	"github.com/vovakirdan/balloon-quiz/internal/registry"
)

func init() {
	registry.Register(config.TouchOverlay, "tap targets track balloons through position listeners", func() balloon.Strategy {
		return New()
	})
}

type subscription struct {
	drift *balloon.Drift
	id    int
}

// Strategy keeps its own copy of where each balloon is.
type Strategy struct {
	targets map[string]core.Rect
	subs    []subscription
}

// New creates an overlay strategy.
func New() *Strategy {
	return &Strategy{targets: make(map[string]core.Rect)}
}

// Name returns the registry id.
func (s *Strategy) Name() string { return config.TouchOverlay }

// Mount places a target over every balloon and subscribes to its drift.
func (s *Strategy) Mount(balloons []*balloon.Balloon) {
	s.Unmount()

	for _, b := range balloons {
		name := b.Subject.Name
		s.targets[name] = b.Body()

		id := b.Drift.AddListener(func(p core.Point) {
			s.targets[name] = b.BodyAt(p)
		})
		s.subs = append(s.subs, subscription{drift: b.Drift, id: id})
	}
}

// Unmount drops every target and listener.
func (s *Strategy) Unmount() {
	for _, sub := range s.subs {
		sub.drift.RemoveListener(sub.id)
	}
	s.subs = nil
	clear(s.targets)
}

// Target returns the tracked rect for the named balloon.
func (s *Strategy) Target(name string) (core.Rect, bool) {
	r, ok := s.targets[name]
	return r, ok
}

// Draw paints the balloons.
func (s *Strategy) Draw(dst *core.Screen, balloons []*balloon.Balloon, st quiz.State) {
	balloon.DrawAll(dst, balloons, st)
}

// HitTest returns the topmost target containing p. A balloon that is not
// tappable has no target.
func (s *Strategy) HitTest(p core.Point, balloons []*balloon.Balloon, st quiz.State) (string, bool) {
	for i := len(balloons) - 1; i >= 0; i-- {
		b := balloons[i]
		if !balloon.Present(b, st).Tappable {
			continue
		}
		r, ok := s.targets[b.Subject.Name]
		if ok && r.Contains(p.X, p.Y) {
			return b.Subject.Name, true
		}
	}
	return "", false
}
