package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/wizardquiz/internal/quiz"
)

var (
	// ErrInvalidState matches any *InvalidStateError via errors.Is.
	ErrInvalidState = errors.New("invalid session state")
	// ErrInvalidAnswer matches any *InvalidAnswerError via errors.Is.
	ErrInvalidAnswer = errors.New("invalid answer")
)

// InvalidStateError indicates an operation that needs an in-progress session
// was called in another phase.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %v (phase %s)", e.Op, ErrInvalidState, e.Phase)
}

func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

// InvalidAnswerError indicates a submitted answer that is not one of the
// current question's options. Choice is the requested option index when the
// answer was submitted by position, -1 otherwise.
type InvalidAnswerError struct {
	Index  int
	Option quiz.Option
	Choice int
}

func (e *InvalidAnswerError) Error() string {
	if e.Choice >= 0 {
		return fmt.Sprintf("%v: question %d has no option %d", ErrInvalidAnswer, e.Index+1, e.Choice+1)
	}
	return fmt.Sprintf("%v: %q (%s +%d) is not an option of question %d",
		ErrInvalidAnswer, e.Option.Text, e.Option.Category, e.Option.Points, e.Index+1)
}

func (e *InvalidAnswerError) Is(target error) bool { return target == ErrInvalidAnswer }
