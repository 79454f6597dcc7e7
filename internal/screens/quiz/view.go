package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wizardquiz/internal/session"
	"github.com/abhisek/wizardquiz/internal/ui/components"
	"github.com/abhisek/wizardquiz/internal/ui/theme"
)

func progressLabel(sess *session.Session) string {
	if sess.Phase() != session.PhaseInProgress {
		return ""
	}
	return fmt.Sprintf("Question %d / %d", sess.CurrentIndex()+1, sess.Total())
}

// renderQuestion renders the counter, progress bar, prompt and options.
func (s *QuizScreen) renderQuestion(width, height int) string {
	q, err := s.sess.CurrentQuestion()
	if err != nil {
		return renderError(width, height, err.Error())
	}

	cw := min(width-8, 70)
	var b strings.Builder

	counter := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(progressLabel(s.sess))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counter))
	b.WriteString("\n")

	bar := components.NewProgressBar("", s.sess.Progress(), true, cw).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	card := theme.Card.Width(cw).Render(strings.TrimSuffix(s.choices.View(cw-6), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(renderLastGain(s.sess, width))

	return b.String()
}

// renderLastGain shows which school the previous answer scored for.
func renderLastGain(sess *session.Session, width int) string {
	gain, ok := sess.LastGain()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Trust your instincts.")
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.CategoryColor(gain.Category)).
		Render(fmt.Sprintf("+%d %s", gain.Points, gain.Category))
}

func renderQuitConfirm(width, height int) string {
	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the quiz? Your answers will be lost.")
	keys := theme.Hint.Render("y: leave   n: keep going")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text+"\n\n"+keys)
}

func renderError(width, height int, msg string) string {
	text := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong")
	detail := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text+"\n\n"+detail)
}
