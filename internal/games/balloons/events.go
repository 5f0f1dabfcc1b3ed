package balloons

import (
	"fmt"

	"github.com/vovakirdan/balloon-quiz/internal/quiz"
)

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventAnswered  EventKind = iota // An answer was accepted
	EventIgnored                    // Input hit a state machine guard
	EventAdvanced                   // The next round started
	EventFinished                   // The last round was acknowledged
	EventRestarted                  // A new session started
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAnswered:
		return "answered"
	case EventIgnored:
		return "ignored"
	case EventAdvanced:
		return "advanced"
	case EventFinished:
		return "finished"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a notable transition, reported for logging.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Subject string       // Answered: the label submitted
	Verdict quiz.Verdict // Answered only
	Score   int          // Score after the event
	Index   int          // Round index after the event
	Err     error        // Ignored: the guard that fired
}

// String formats the event for log lines.
func (e Event) String() string {
	switch e.Kind {
	case EventAnswered:
		return fmt.Sprintf("%s %s (%s) score=%d", e.Kind, e.Subject, e.Verdict, e.Score)
	case EventIgnored:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case EventAdvanced:
		return fmt.Sprintf("%s to round %d", e.Kind, e.Index+1)
	default:
		return fmt.Sprintf("%s score=%d", e.Kind, e.Score)
	}
}
