// Package balloons composes the balloon quiz screen: it owns the state
// machine, the drifting balloons and the touch strategy, turns input frames
// into state transitions and draws the result.
package balloons

import (
	"errors"
	"time"

	"github.com/vovakirdan/balloon-quiz/internal/balloon"
	"github.com/vovakirdan/balloon-quiz/internal/config"
	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

// HeaderHeight is the number of rows above the balloon area.
const HeaderHeight = 3

// ErrNoStrategy is returned by New when no touch strategy is given.
var ErrNoStrategy = errors.New("balloons: touch strategy is required")

// Game is one play session on one screen.
type Game struct {
	machine  *quiz.Machine
	cfg      config.BalloonsConfig
	strategy balloon.Strategy
	balloons []*balloon.Balloon

	tick    uint64
	tickDur time.Duration
	screenW int
	screenH int

	events []Event
}

// New creates a game over bank that draws balloons as cfg describes and
// captures taps with strategy. The game starts on a default-sized screen;
// Reset sizes it for the real one.
func New(bank quiz.Bank, cfg config.BalloonsConfig, strategy balloon.Strategy) (*Game, error) {
	if strategy == nil {
		return nil, ErrNoStrategy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := quiz.NewMachine(bank)
	if err != nil {
		return nil, err
	}

	g := &Game{
		machine:  m,
		cfg:      cfg,
		strategy: strategy,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// Reset starts a fresh session on a screen of the given size.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.tickDur = rc.TickDuration()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.events = g.events[:0]
	g.restart()
}

// restart puts the machine and the balloons back to the beginning.
func (g *Game) restart() {
	g.machine.Restart()
	g.strategy.Unmount()
	g.balloons = balloon.Layout(g.machine.Bank(), g.cfg, g.area())
	g.strategy.Mount(g.balloons)
	balloon.StartAll(g.balloons)
}

func (g *Game) area() balloon.Area {
	return balloon.Area{Width: g.screenW, Top: HeaderHeight, Bottom: g.screenH}
}

// Step consumes one tick of input and moves the balloons.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if in.Has(core.ActionRestart) {
		g.restart()
		g.emit(Event{Kind: EventRestarted})
		return core.StepResult{State: g.State()}
	}

	if !in.Empty() {
		for _, p := range in.Taps {
			g.tap(p)
		}
		for _, slot := range in.Picks {
			g.pick(slot)
		}
		if in.Has(core.ActionConfirm) {
			g.confirm()
		}
	}

	balloon.AdvanceAll(g.balloons, g.tickDur)
	return core.StepResult{State: g.State()}
}

// tap routes a pointer press to a modal button or a balloon.
func (g *Game) tap(p core.Point) {
	v := g.View()
	switch {
	case v.Summary != nil:
		if v.Summary.Button.Rect.Contains(p.X, p.Y) {
			g.playAgain()
		}
	case v.Feedback != nil:
		if v.Feedback.Button.Rect.Contains(p.X, p.Y) {
			g.advance()
		}
	case p.Y >= HeaderHeight:
		if name, ok := g.strategy.HitTest(p, g.balloons, g.machine.State()); ok {
			g.answer(name)
		}
	}
}

// pick answers with the balloon in slot. Unlike taps, picks always reach
// the state machine so its guards decide.
func (g *Game) pick(slot int) {
	if slot < 0 || slot >= len(g.balloons) {
		return
	}
	g.answer(g.balloons[slot].Subject.Name)
}

// confirm is Next while a round is answered and Play Again once it is over.
func (g *Game) confirm() {
	if g.machine.State().Over {
		g.playAgain()
		return
	}
	g.advance()
}

func (g *Game) answer(name string) {
	o, err := g.machine.SubmitAnswer(name)
	if err != nil {
		g.ignore(err)
		return
	}

	balloon.StopAll(g.balloons)
	st := g.machine.State()
	g.emit(Event{Kind: EventAnswered, Subject: name, Verdict: o.Verdict, Score: st.Score, Index: st.Index})
}

func (g *Game) advance() {
	if err := g.machine.Advance(); err != nil {
		g.ignore(err)
		return
	}

	st := g.machine.State()
	if st.Over {
		g.emit(Event{Kind: EventFinished, Score: st.Score, Index: st.Index})
		return
	}
	balloon.StartAll(g.balloons)
	g.emit(Event{Kind: EventAdvanced, Score: st.Score, Index: st.Index})
}

func (g *Game) playAgain() {
	g.restart()
	g.emit(Event{Kind: EventRestarted})
}

func (g *Game) ignore(err error) {
	st := g.machine.State()
	g.emit(Event{Kind: EventIgnored, Err: err, Score: st.Score, Index: st.Index})
}

func (g *Game) emit(e Event) {
	e.Tick = g.tick
	g.events = append(g.events, e)
}

// Events returns what happened during the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// Resize adapts the layout to a new screen size. The session is kept.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	balloon.Relayout(g.balloons, g.cfg, g.area())
}

// Close stops the animations and detaches the touch strategy.
func (g *Game) Close() {
	balloon.StopAll(g.balloons)
	g.strategy.Unmount()
}

// Quiz returns the state machine's current state.
func (g *Game) Quiz() quiz.State {
	return g.machine.State()
}

// State returns the platform view of the game state.
func (g *Game) State() core.GameState {
	st := g.machine.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Over,
	}
}

// Balloons returns the balloons on screen, bottom-most first.
func (g *Game) Balloons() []*balloon.Balloon {
	return g.balloons
}

// Strategy returns the touch strategy in use.
func (g *Game) Strategy() balloon.Strategy {
	return g.strategy
}

// Tick returns the number of steps taken since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
