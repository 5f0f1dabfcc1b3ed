package quiz

import "errors"

// Guard violations. They never change state; callers driven by a UI are
// expected to treat them as no-ops.
var (
	ErrEmptyLabel      = errors.New("quiz: empty answer label")
	ErrAlreadyAnswered = errors.New("quiz: round already answered")
	ErrNotAnswered     = errors.New("quiz: round not answered yet")
	ErrGameOver        = errors.New("quiz: game is over")
)

// State is a snapshot of one play session.
//
// Selected and Correct are set together with Answered and cleared together
// when the next round starts. Once Over is set the rest is frozen until
// the machine is restarted.
type State struct {
	Score    int
	Index    int
	Answered bool
	Selected string
	Correct  string
	Over     bool
}

// Initial is the state every session starts from.
func Initial() State {
	return State{}
}

// Verdict tells whether an answer matched the current subject.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictIncorrect
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "Correct"
	case VerdictIncorrect:
		return "Incorrect"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a submitted answer.
type Outcome struct {
	Verdict Verdict
	Answer  string // name of the right subject
}

// Title is the feedback headline for the outcome.
func (o Outcome) Title() string {
	if o.Verdict == VerdictCorrect {
		return "Correct!"
	}
	return "Wrong!"
}

// Message is the feedback body for the outcome.
func (o Outcome) Message() string {
	if o.Verdict == VerdictCorrect {
		return "Great job!"
	}
	return "The answer was " + o.Answer
}

// Machine drives a session through its rounds.
// It is not safe for concurrent use.
type Machine struct {
	bank  Bank
	state State
}

// NewMachine returns a machine in the initial state over bank.
func NewMachine(bank Bank) (*Machine, error) {
	if bank.Len() == 0 {
		return nil, ErrEmptyBank
	}
	return &Machine{bank: bank, state: Initial()}, nil
}

// Bank returns the subjects the machine plays through.
func (m *Machine) Bank() Bank {
	return m.bank
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Current returns the subject of the current round. After the game is
// over it keeps returning the last subject.
func (m *Machine) Current() Subject {
	return m.bank.At(m.state.Index)
}

// FinalScore returns the score and whether the game is over.
func (m *Machine) FinalScore() (int, bool) {
	return m.state.Score, m.state.Over
}

// SubmitAnswer records the player's pick for the current round.
func (m *Machine) SubmitAnswer(label string) (Outcome, error) {
	switch {
	case m.state.Over:
		return Outcome{}, ErrGameOver
	case m.state.Answered:
		return Outcome{}, ErrAlreadyAnswered
	case label == "":
		return Outcome{}, ErrEmptyLabel
	}

	answer := m.Current().Name
	m.state.Selected = label
	m.state.Correct = answer
	m.state.Answered = true

	if label == answer {
		m.state.Score++
		return Outcome{Verdict: VerdictCorrect, Answer: answer}, nil
	}
	m.state.Score = max(0, m.state.Score-1)
	return Outcome{Verdict: VerdictIncorrect, Answer: answer}, nil
}

// Advance acknowledges the answered round and moves to the next one, or
// ends the game after the last subject.
func (m *Machine) Advance() error {
	switch {
	case m.state.Over:
		return ErrGameOver
	case !m.state.Answered:
		return ErrNotAnswered
	}

	if m.state.Index >= m.bank.Len()-1 {
		m.state.Over = true
		return nil
	}

	m.state.Index++
	m.state.Answered = false
	m.state.Selected = ""
	m.state.Correct = ""
	return nil
}

// Restart throws the session away and starts a new one.
func (m *Machine) Restart() {
	m.state = Initial()
}
