// Package quiz holds the game-progression logic of the balloon quiz: the
// question bank, the state machine that scores answers and moves through
// rounds, and the pure presentation rule every balloon renderer consults.
//
// Nothing here knows about terminals, animation or input devices.
package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBank        = errors.New("quiz: bank has no subjects")
	ErrInvalidSubject   = errors.New("quiz: subject needs a name and a hint")
	ErrDuplicateSubject = errors.New("quiz: duplicate subject name")
)

// Subject is one animal/hint pair acting as a quiz question.
type Subject struct {
	Name string
	Hint string
}

// Bank is an ordered, immutable sequence of subjects.
type Bank struct {
	subjects []Subject
}

// NewBank validates the subjects and returns a bank holding a private copy.
func NewBank(subjects ...Subject) (Bank, error) {
	if len(subjects) == 0 {
		return Bank{}, ErrEmptyBank
	}

	seen := make(map[string]int, len(subjects))
	for i, s := range subjects {
		if s.Name == "" || s.Hint == "" {
			return Bank{}, fmt.Errorf("subject %d: %w", i, ErrInvalidSubject)
		}
		if j, ok := seen[s.Name]; ok {
			return Bank{}, fmt.Errorf("subject %d %q (first at %d): %w", i, s.Name, j, ErrDuplicateSubject)
		}
		seen[s.Name] = i
	}

	return Bank{subjects: append([]Subject(nil), subjects...)}, nil
}

// MustBank is NewBank for built-in data; it panics on invalid input.
func MustBank(subjects ...Subject) Bank {
	b, err := NewBank(subjects...)
	if err != nil {
		panic(err)
	}
	return b
}

var defaultBank = MustBank(
	Subject{Name: "Cat", Hint: "Meows and loves yarn 🧶"},
	Subject{Name: "Dog", Hint: "Barks and loves bones 🦴"},
	Subject{Name: "Pig", Hint: "Oinks and loves mud 🪨"},
	Subject{Name: "Bird", Hint: "Chirps and builds nests 🪶"},
	Subject{Name: "Fish", Hint: "Swims in water 🌊"},
)

// DefaultBank returns the built-in five animals.
func DefaultBank() Bank {
	return defaultBank
}

// Len returns the number of subjects.
func (b Bank) Len() int {
	return len(b.subjects)
}

// At returns the subject at index i. It panics when i is out of range.
func (b Bank) At(i int) Subject {
	return b.subjects[i]
}

// Subjects returns a copy of the subjects in order.
func (b Bank) Subjects() []Subject {
	return append([]Subject(nil), b.subjects...)
}

// Index returns the position of the named subject, or -1.
func (b Bank) Index(name string) int {
	for i, s := range b.subjects {
		if s.Name == name {
			return i
		}
	}
	return -1
}
