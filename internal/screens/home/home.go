package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wizardquiz/internal/router"
	"github.com/abhisek/wizardquiz/internal/screen"
	quizscreen "github.com/abhisek/wizardquiz/internal/screens/quiz"
	"github.com/abhisek/wizardquiz/internal/session"
	"github.com/abhisek/wizardquiz/internal/ui/components"
	"github.com/abhisek/wizardquiz/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	sess       *session.Session
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen for sess.
func New(sess *session.Session) *HomeScreen {
	menuLabels := []string{"START QUIZ", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			sess.Start()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(sess)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		sess:       sess,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)

	cw := contentWidth(width)
	bank := h.sess.Bank()

	var sections []string
	sections = append(sections, renderTitle(bank.Title, cw, compact))
	if bank.Subtitle != "" {
		sections = append(sections, renderSubtitle(bank.Subtitle, cw))
	}
	sections = append(sections, renderInfoBox(bank.Len(), len(bank.Profiles), cw))
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, compact))

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	keys := h.menu.Keys
	return []layout.KeyHint{
		{Key: keys.Up.Help().Key + keys.Down.Help().Key, Description: "Navigate"},
		{Key: keys.Select.Help().Key, Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
