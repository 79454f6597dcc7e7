package session

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wizardquiz/internal/quiz"
	"github.com/abhisek/wizardquiz/internal/scoring"
)

// New creates a session over bank in the NotStarted phase.
// The bank is validated up front; a nil logger discards log output.
func New(bank *quiz.Bank, logger *slog.Logger) (*Session, error) {
	if bank == nil {
		return nil, &quiz.ConfigurationError{Problems: []string{"nil bank"}}
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		bank:   bank,
		logger: logger,
		now:    time.Now,
		phase:  PhaseNotStarted,
	}, nil
}

// Start discards any previous attempt and begins a fresh one at question 0.
func (s *Session) Start() {
	s.id = uuid.New().String()
	s.tally = scoring.Tally{}
	s.index = 0
	s.lastGain = nil
	s.startedAt = s.now()
	s.finishedAt = time.Time{}
	s.phase = PhaseInProgress

	s.logger.Debug("session started", "session_id", s.id, "questions", s.bank.Len())
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (quiz.Question, error) {
	if s.phase != PhaseInProgress {
		return quiz.Question{}, &InvalidStateError{Op: "current question", Phase: s.phase}
	}
	q, _ := s.bank.Question(s.index)
	return q, nil
}

// SubmitAnswer counts opt for the current question and advances.
// opt must be one of the current question's options. On error the
// session is left untouched.
func (s *Session) SubmitAnswer(opt quiz.Option) error {
	if s.phase != PhaseInProgress {
		return &InvalidStateError{Op: "submit answer", Phase: s.phase}
	}
	if !s.bank.HasOption(s.index, opt) {
		return &InvalidAnswerError{Index: s.index, Option: opt, Choice: -1}
	}
	s.apply(opt)
	return nil
}

// SubmitChoice submits the option at position choice (0-based) of the
// current question.
func (s *Session) SubmitChoice(choice int) error {
	if s.phase != PhaseInProgress {
		return &InvalidStateError{Op: "submit answer", Phase: s.phase}
	}
	q, _ := s.bank.Question(s.index)
	if choice < 0 || choice >= len(q.Options) {
		return &InvalidAnswerError{Index: s.index, Choice: choice}
	}
	s.apply(q.Options[choice])
	return nil
}

// apply is the only place the tally changes.
func (s *Session) apply(opt quiz.Option) {
	s.tally = scoring.Apply(s.tally, opt)
	s.lastGain = &Gain{Category: opt.Category, Points: opt.Points}

	s.logger.Debug("answer recorded",
		"session_id", s.id,
		"question", s.index+1,
		"category", opt.Category.String(),
		"points", opt.Points,
	)

	if s.index+1 < s.bank.Len() {
		s.index++
		return
	}

	s.phase = PhaseFinished
	s.finishedAt = s.now()
	s.logger.Info("session finished",
		"session_id", s.id,
		"total_points", s.tally.TotalPoints(),
		"duration", s.finishedAt.Sub(s.startedAt),
	)
}

// Result resolves the final tally. The session must be finished.
func (s *Session) Result() (scoring.Result, error) {
	if s.phase != PhaseFinished {
		return scoring.Result{}, &InvalidStateError{Op: "result", Phase: s.phase}
	}
	return scoring.Resolve(s.tally), nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// CurrentIndex returns the 0-based index of the current question.
func (s *Session) CurrentIndex() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return s.bank.Len() }

// Bank returns the content the session runs over.
func (s *Session) Bank() *quiz.Bank { return s.bank }

// ID returns the identifier of the current attempt, empty before Start.
func (s *Session) ID() string { return s.id }

// Tally returns a copy of the running tally.
func (s *Session) Tally() scoring.Tally { return s.tally }

// LastGain returns what the most recent answer awarded, if any.
func (s *Session) LastGain() (Gain, bool) {
	if s.lastGain == nil {
		return Gain{}, false
	}
	return *s.lastGain, true
}

// Progress returns the fraction of questions answered, in [0, 1].
func (s *Session) Progress() float64 {
	switch s.phase {
	case PhaseFinished:
		return 1
	case PhaseInProgress:
		return float64(s.index) / float64(s.bank.Len())
	default:
		return 0
	}
}

// Elapsed returns how long the attempt took, or has taken so far.
func (s *Session) Elapsed() time.Duration {
	switch s.phase {
	case PhaseFinished:
		return s.finishedAt.Sub(s.startedAt)
	case PhaseInProgress:
		return s.now().Sub(s.startedAt)
	default:
		return 0
	}
}
