package result

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wizardquiz/internal/router"
	"github.com/abhisek/wizardquiz/internal/scoring"
	"github.com/abhisek/wizardquiz/internal/screen"
	"github.com/abhisek/wizardquiz/internal/session"
	"github.com/abhisek/wizardquiz/internal/ui/components"
	"github.com/abhisek/wizardquiz/internal/ui/layout"
)

// ResultScreen shows the winning school and the full breakdown of a
// finished session.
type ResultScreen struct {
	sess   *session.Session
	result scoring.Result
	menu   components.Menu
	back   key.Binding
	errMsg string
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a finished session. replay builds the
// screen shown after PLAY AGAIN restarts the session.
func New(sess *session.Session, replay func() screen.Screen) *ResultScreen {
	s := &ResultScreen{
		sess: sess,
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Home"),
		),
	}

	res, err := sess.Result()
	if err != nil {
		s.errMsg = err.Error()
	}
	s.result = res

	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			sess.Start()
			next := replay()
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}},
		{Label: "HOME", Action: func() tea.Cmd {
			return popScreen
		}},
	})
	return s
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Your Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	keys := s.menu.Keys
	back := s.back.Help()
	return []layout.KeyHint{
		{Key: keys.Up.Help().Key + keys.Down.Help().Key, Description: "Navigate"},
		{Key: keys.Select.Help().Key, Description: "Select"},
		{Key: back.Key, Description: back.Desc},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if key.Matches(kmsg, s.back) {
		return s, popScreen
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	return s.renderResult(width)
}

func popScreen() tea.Msg {
	return router.PopScreenMsg{}
}
