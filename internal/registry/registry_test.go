package registry_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/balloon-quiz/internal/balloon"
	_ "github.com/vovakirdan/balloon-quiz/internal/balloon/inline"
	_ "github.com/vovakirdan/balloon-quiz/internal/balloon/overlay"
	"github.com/vovakirdan/balloon-quiz/internal/config"
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
	"github.com/vovakirdan/balloon-quiz/internal/registry"
)

func TestList(t *testing.T) {
	list := registry.List()
	if len(list) != 2 || list[0].Name != "inline" || list[1].Name != "overlay" {
		t.Fatalf("List() = %+v, expected inline and overlay", list)
	}
	for _, info := range list {
		if info.Description == "" {
			t.Errorf("%s has no description", info.Name)
		}
	}
}

func TestCreate(t *testing.T) {
	s, err := registry.Create("overlay")
	if err != nil || s.Name() != "overlay" {
		t.Fatalf("Create(overlay) = %v, %v", s, err)
	}

	if _, err := registry.Create("pinch"); err == nil {
		t.Error("Create of unknown strategy should fail")
	}
	if registry.Exists("pinch") || !registry.Exists("inline") {
		t.Error("Exists() reports wrong registrations")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	registry.Register("inline", "again", nil)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		touch, platform, want string
	}{
		{"auto", "ios", "inline"},
		{"auto", "darwin", "inline"},
		{"auto", "android", "overlay"},
		{"", "linux", "overlay"},
		{"inline", "android", "inline"},
		{"overlay", "ios", "overlay"},
	}

	for _, tc := range tests {
		s, err := registry.Resolve(tc.touch, tc.platform)
		if err != nil {
			t.Fatalf("Resolve(%q, %q) failed: %v", tc.touch, tc.platform, err)
		}
		if s.Name() != tc.want {
			t.Errorf("Resolve(%q, %q) = %s, expected %s", tc.touch, tc.platform, s.Name(), tc.want)
		}
	}
}

// Both strategies must draw the same picture and accept the same taps
// for the same balloons and state.
func TestStrategiesAgree(t *testing.T) {
	states := []quiz.State{
		quiz.Initial(),
		{Answered: true, Selected: "Fish", Correct: "Dog", Index: 1},
		{Answered: true, Selected: "Pig", Correct: "Pig", Index: 2, Score: 2},
	}

	for _, elapsed := range []time.Duration{0, 1500 * time.Millisecond, 4 * time.Second} {
		for _, st := range states {
			var screens []string
			var hits [][]string

			for _, name := range []string{"inline", "overlay"} {
				s, err := registry.Create(name)
				if err != nil {
					t.Fatalf("Create(%s) failed: %v", name, err)
				}

				balloons := balloon.Layout(quiz.DefaultBank(), config.DefaultBalloonsConfig(),
					balloon.Area{Width: 80, Top: 4, Bottom: 24})
				s.Mount(balloons)
				balloon.StartAll(balloons)
				balloon.AdvanceAll(balloons, elapsed)

				for _, b := range balloons {
					if balloon.Present(b, st) != quiz.PresentationFor(b.Subject.Name, b.Color, st) {
						t.Errorf("%s: Present disagrees with PresentationFor", name)
					}
				}

				screen := core.NewScreen(80, 24)
				s.Draw(screen, balloons, st)
				screens = append(screens, screen.String())

				var got []string
				for y := 0; y < 24; y++ {
					for x := 0; x < 80; x++ {
						if hit, ok := s.HitTest(core.Point{X: x, Y: y}, balloons, st); ok {
							got = append(got, hit)
						}
					}
				}
				hits = append(hits, got)
				s.Unmount()
			}

			if screens[0] != screens[1] {
				t.Errorf("elapsed %v state %+v: strategies drew different screens", elapsed, st)
			}
			if len(hits[0]) != len(hits[1]) {
				t.Errorf("elapsed %v state %+v: hit counts %d vs %d", elapsed, st, len(hits[0]), len(hits[1]))
				continue
			}
			for i := range hits[0] {
				if hits[0][i] != hits[1][i] {
					t.Errorf("elapsed %v state %+v: hit %d %s vs %s", elapsed, st, i, hits[0][i], hits[1][i])
					break
				}
			}
		}
	}
}
