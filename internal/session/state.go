package session

import (
	"log/slog"
	"time"

	"github.com/abhisek/wizardquiz/internal/quiz"
	"github.com/abhisek/wizardquiz/internal/scoring"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Created, Start not called yet
	PhaseInProgress              // Serving questions
	PhaseFinished                // Every question answered; tally frozen
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Gain records the points the most recent answer awarded.
type Gain struct {
	Category quiz.Category
	Points   int
}

// Session drives one attempt at a quiz bank from start to finish.
// A Session is owned by a single caller and is not safe for concurrent use.
type Session struct {
	bank   *quiz.Bank
	logger *slog.Logger
	now    func() time.Time

	// id is regenerated on every Start.
	id string

	phase Phase
	index int
	tally scoring.Tally

	lastGain *Gain

	startedAt  time.Time
	finishedAt time.Time
}
