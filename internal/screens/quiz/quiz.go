package quiz

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wizardquiz/internal/router"
	"github.com/abhisek/wizardquiz/internal/screen"
	"github.com/abhisek/wizardquiz/internal/screens/result"
	"github.com/abhisek/wizardquiz/internal/session"
	"github.com/abhisek/wizardquiz/internal/ui/components"
	"github.com/abhisek/wizardquiz/internal/ui/layout"
)

type keyMap struct {
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("Y", "Leave quiz"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("N", "Keep going"),
		),
	}
}

// QuizScreen asks the questions of a running session one at a time.
type QuizScreen struct {
	sess        *session.Session
	choices     components.ChoiceList
	keys        keyMap
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.ProgressProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for sess. The session must already be started.
func New(sess *session.Session) *QuizScreen {
	s := &QuizScreen{
		sess: sess,
		keys: defaultKeyMap(),
	}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) ProgressLabel() string {
	return progressLabel(s.sess)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			hint(s.keys.Confirm),
			hint(s.keys.Cancel),
		}
	}
	nav := s.choices.Keys
	return []layout.KeyHint{
		hint(s.choices.Number),
		{Key: nav.Up.Help().Key + nav.Down.Help().Key, Description: "Move"},
		{Key: nav.Select.Help().Key, Description: "Answer"},
		hint(s.keys.Quit),
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, popScreen
	}

	if s.confirmQuit {
		switch {
		case key.Matches(kmsg, s.keys.Confirm):
			s.confirmQuit = false
			return s, popScreen
		case key.Matches(kmsg, s.keys.Cancel):
			s.confirmQuit = false
		}
		return s, nil
	}

	if key.Matches(kmsg, s.keys.Quit) {
		s.confirmQuit = true
		return s, nil
	}

	var picked int
	s.choices, picked = s.choices.Update(msg)
	if picked < 0 {
		return s, nil
	}
	return s.answer(picked)
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestion(width, height)
}

// answer submits the picked option and moves to the result screen once the
// session reports it is finished.
func (s *QuizScreen) answer(choice int) (screen.Screen, tea.Cmd) {
	if err := s.sess.SubmitChoice(choice); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if s.sess.Phase() == session.PhaseFinished {
		sess := s.sess
		next := result.New(sess, func() screen.Screen { return New(sess) })
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	s.loadQuestion()
	return s, nil
}

// loadQuestion resets the choice list to the session's current question.
func (s *QuizScreen) loadQuestion() {
	q, err := s.sess.CurrentQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.choices = components.NewChoiceList(q.Options)
}

func popScreen() tea.Msg {
	return router.PopScreenMsg{}
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
