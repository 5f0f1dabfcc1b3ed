package balloon

import (
	"math"
	"time"

	"github.com/vovakirdan/balloon-quiz/internal/core"
)

// Motion describes one balloon's looping drift in screen cells.
type Motion struct {
	StartX float64 // Column the sway is centred on
	Sway   float64 // Swing either side of StartX
	Bottom float64 // Row the balloon rises from (hidden below the screen)
	Top    float64 // Row the balloon rises to (hidden above the play area)

	Delay time.Duration // Hold before each rise and each sway cycle
	Rise  time.Duration // Bottom to top
	Half  time.Duration // One half of the side-to-side swing
}

// Drift is a balloon's decorative position animation.
//
// The position is a pure function of the running time accumulated through
// Advance, so identical tick sequences give identical paths. Stop cancels
// the animation: the balloon stays where it is and further ticks are
// ignored until Start.
type Drift struct {
	motion    Motion
	elapsed   time.Duration
	running   bool
	pos       core.Point
	listeners map[int]func(core.Point)
	nextID    int
}

// NewDrift returns a stopped drift at the start of its path.
func NewDrift(m Motion) *Drift {
	d := &Drift{
		motion:    m,
		listeners: make(map[int]func(core.Point)),
	}
	d.pos = d.positionAt(0)
	return d
}

// Start resumes the animation.
func (d *Drift) Start() {
	d.running = true
}

// Stop freezes the animation in place.
func (d *Drift) Stop() {
	d.running = false
}

// Running reports whether ticks move the balloon.
func (d *Drift) Running() bool {
	return d.running
}

// Elapsed returns the running time accumulated so far.
func (d *Drift) Elapsed() time.Duration {
	return d.elapsed
}

// Position returns the balloon's current top-left cell.
func (d *Drift) Position() core.Point {
	return d.pos
}

// Advance moves the animation forward by dt if it is running.
func (d *Drift) Advance(dt time.Duration) {
	if !d.running || dt <= 0 {
		return
	}
	d.elapsed += dt
	d.update()
}

// Retarget swaps the path, keeping the elapsed time. Used when the screen
// is resized.
func (d *Drift) Retarget(m Motion) {
	d.motion = m
	d.update()
}

// AddListener registers fn to be called with every new position and
// returns an id for RemoveListener.
func (d *Drift) AddListener(fn func(core.Point)) int {
	d.nextID++
	d.listeners[d.nextID] = fn
	return d.nextID
}

// RemoveListener unregisters a listener. Unknown ids are ignored.
func (d *Drift) RemoveListener(id int) {
	delete(d.listeners, id)
}

// Listeners returns the number of registered listeners.
func (d *Drift) Listeners() int {
	return len(d.listeners)
}

func (d *Drift) update() {
	pos := d.positionAt(d.elapsed)
	if pos == d.pos {
		return
	}
	d.pos = pos
	for _, fn := range d.listeners {
		fn(pos)
	}
}

// positionAt evaluates the path at running time t.
func (d *Drift) positionAt(t time.Duration) core.Point {
	m := d.motion
	return core.Point{
		X: int(math.Round(m.xAt(t))),
		Y: int(math.Round(m.yAt(t))),
	}
}

// yAt: hold at the bottom for Delay, rise to the top, jump back, repeat.
func (m Motion) yAt(t time.Duration) float64 {
	cycle := m.Delay + m.Rise
	if cycle <= 0 {
		return m.Bottom
	}
	t %= cycle
	if t < m.Delay {
		return m.Bottom
	}
	return core.Lerp(m.Bottom, m.Top, ease(progress(t-m.Delay, m.Rise)))
}

// xAt: hold for Delay, swing right, swing left, repeat. The first cycle
// starts from StartX, later ones from the left end of the swing.
func (m Motion) xAt(t time.Duration) float64 {
	cycle := m.Delay + 2*m.Half
	if cycle <= 0 || m.Half <= 0 {
		return m.StartX
	}

	right := m.StartX + m.Sway
	left := m.StartX - m.Sway
	from := m.StartX
	if t >= cycle {
		from = left
	}

	t %= cycle
	switch {
	case t < m.Delay:
		return from
	case t < m.Delay+m.Half:
		return core.Lerp(from, right, ease(progress(t-m.Delay, m.Half)))
	default:
		return core.Lerp(right, left, ease(progress(t-m.Delay-m.Half, m.Half)))
	}
}

func progress(t, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return core.ClampF(float64(t)/float64(total), 0, 1)
}

// ease is a cubic ease-in-out.
func ease(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}
