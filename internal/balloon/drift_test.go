package balloon

import (
	"testing"
	"time"

	"github.com/vovakirdan/balloon-quiz/internal/core"
)

func testMotion() Motion {
	return Motion{
		StartX: 20,
		Sway:   4,
		Bottom: 24,
		Top:    -7,
		Delay:  400 * time.Millisecond,
		Rise:   5000 * time.Millisecond,
		Half:   2500 * time.Millisecond,
	}
}

func TestDriftPath(t *testing.T) {
	tests := []struct {
		name string
		at   time.Duration
		want core.Point
	}{
		{"start", 0, core.Point{X: 20, Y: 24}},
		{"end of delay", 400 * time.Millisecond, core.Point{X: 20, Y: 24}},
		{"mid rise at right end of sway", 2900 * time.Millisecond, core.Point{X: 24, Y: 9}},
		{"top of rise at left end of sway", 5399 * time.Millisecond, core.Point{X: 16, Y: -7}},
		{"jump back to bottom", 5400 * time.Millisecond, core.Point{X: 16, Y: 24}},
		{"second cycle swings from the left", 8300 * time.Millisecond, core.Point{X: 24, Y: 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDrift(testMotion())
			d.Start()
			d.Advance(tc.at)
			if got := d.Position(); got != tc.want {
				t.Errorf("Position() at %v = %+v, expected %+v", tc.at, got, tc.want)
			}
		})
	}
}

func TestDriftDeterminism(t *testing.T) {
	d1 := NewDrift(testMotion())
	d2 := NewDrift(testMotion())
	d1.Start()
	d2.Start()

	// Same total time in different tick sizes lands in the same place.
	for i := 0; i < 500; i++ {
		d1.Advance(20 * time.Millisecond)
	}
	for i := 0; i < 100; i++ {
		d2.Advance(100 * time.Millisecond)
	}

	if d1.Position() != d2.Position() {
		t.Errorf("paths diverged: %+v vs %+v", d1.Position(), d2.Position())
	}
}

func TestDriftStopFreezes(t *testing.T) {
	d := NewDrift(testMotion())

	d.Advance(time.Second)
	if d.Elapsed() != 0 {
		t.Errorf("a new drift is stopped; Elapsed() = %v", d.Elapsed())
	}

	d.Start()
	d.Advance(time.Second)
	frozen := d.Position()

	d.Stop()
	if d.Running() {
		t.Error("Running() should be false after Stop")
	}
	for i := 0; i < 10; i++ {
		d.Advance(time.Second)
	}
	if d.Position() != frozen || d.Elapsed() != time.Second {
		t.Errorf("stopped drift moved: pos=%+v elapsed=%v", d.Position(), d.Elapsed())
	}

	// Resumes from where it stopped
	d.Start()
	d.Advance(100 * time.Millisecond)
	if d.Elapsed() != 1100*time.Millisecond {
		t.Errorf("Elapsed() after resume = %v, expected 1.1s", d.Elapsed())
	}
}

func TestDriftListeners(t *testing.T) {
	d := NewDrift(testMotion())
	d.Start()

	var seen []core.Point
	id := d.AddListener(func(p core.Point) { seen = append(seen, p) })

	// y = 19.94 and x = 23.25, well clear of a half-cell boundary
	d.Advance(2000 * time.Millisecond)
	if len(seen) != 1 || seen[0] != (core.Point{X: 23, Y: 20}) {
		t.Fatalf("listener calls = %v, expected one call with {23 20}", seen)
	}

	// No call when the position does not change
	for _, dt := range []time.Duration{time.Nanosecond, 0, -time.Second} {
		d.Advance(dt)
		if len(seen) != 1 {
			t.Fatalf("listener called without movement after Advance(%v): %v", dt, seen)
		}
	}

	d.Stop()
	d.Advance(time.Second)
	if len(seen) != 1 {
		t.Errorf("listener called while stopped: %v", seen)
	}
	d.Start()

	d.RemoveListener(id)
	d.Advance(time.Second)
	if len(seen) != 1 || d.Listeners() != 0 {
		t.Errorf("removed listener still called: %v", seen)
	}
}

func TestDriftRetarget(t *testing.T) {
	d := NewDrift(testMotion())
	d.Start()
	d.Advance(400 * time.Millisecond)

	m := testMotion()
	m.StartX = 50
	m.Bottom = 40
	d.Retarget(m)

	if got := d.Position(); got != (core.Point{X: 50, Y: 40}) {
		t.Errorf("Position() after Retarget = %+v", got)
	}
	if d.Elapsed() != 400*time.Millisecond {
		t.Errorf("Retarget should keep elapsed time, got %v", d.Elapsed())
	}
}

func TestEase(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1} {
		if got := ease(p); got != p {
			t.Errorf("ease(%v) = %v, expected %v", p, got, p)
		}
	}
	if ease(0.25) >= 0.25 || ease(0.75) <= 0.75 {
		t.Error("ease should start slow and end slow")
	}
}
