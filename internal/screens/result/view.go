package result

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wizardquiz/internal/scoring"
	"github.com/abhisek/wizardquiz/internal/ui/components"
	"github.com/abhisek/wizardquiz/internal/ui/theme"
)

// renderResult renders the winner card, the breakdown and the menu.
func (s *ResultScreen) renderResult(width int) string {
	winner := s.result.Winner
	profile := s.sess.Bank().Profile(winner.Category)
	accent := theme.CategoryColor(winner.Category)
	cw := min(width-8, 64)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your school of magic is"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(accent).
		Bold(true).
		Render(strings.ToUpper(winner.Category.String())))
	b.WriteString("\n")

	if profile.Tagline != "" && profile.Tagline != winner.Category.String() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Italic(true).
			Render(profile.Tagline))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d points from %s", winner.Points, answers(winner.Count))))
	b.WriteString("\n\n")

	if profile.Description != "" {
		desc := theme.Card.
			Width(cw).
			BorderForeground(accent).
			Foreground(theme.Text).
			Render(profile.Description)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Breakdown")))
	b.WriteString("\n")
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(cw, 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	for _, row := range renderBreakdown(s.result, cw) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Finished in "+formatDuration(s.sess.Elapsed())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	return b.String()
}

// renderBreakdown returns one line per ranked category with its share bar.
func renderBreakdown(res scoring.Result, cw int) []string {
	rows := make([]string, 0, len(res.Ranking))
	for i, st := range res.Ranking {
		label := fmt.Sprintf("%d. %-13s %3d pts %3s", i+1, st.Category, st.Points, fmt.Sprintf("x%d", st.Count))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = style.Bold(true)
		}
		bar := components.NewProgressBar("", res.Share(st.Category), true, max(cw-lipgloss.Width(label)-2, 10)).
			WithFill(theme.CategoryColor(st.Category))
		rows = append(rows, style.Render(label)+"  "+bar.View())
	}
	return rows
}

func answers(n int) string {
	if n == 1 {
		return "1 answer"
	}
	return fmt.Sprintf("%d answers", n)
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func renderError(width, height int, msg string) string {
	text := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render(msg)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

