package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wizardquiz/internal/ui/theme"
)

const bannerArt = `  ╦ ╦╦╔═╗╔═╗╦═╗╔╦╗
  ║║║║╔═╝╠═╣╠╦╝ ║║
  ╚╩╝╩╚═╝╩ ╩╩╚══╩╝`

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the banner and bank title, or just the title when compact.
func renderTitle(title string, cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	block := style.Render(strings.ToUpper(title))
	if !compact {
		block = lipgloss.NewStyle().Foreground(theme.Primary).Render(bannerArt) + "\n\n" + block
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

func renderSubtitle(subtitle string, cw int) string {
	return theme.Subtitle.Width(cw).Render(subtitle)
}

// renderInfoBox shows how long the quiz is and how many schools it can pick.
func renderInfoBox(questions, profiles, cw int) string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	profileStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	info := fmt.Sprintf("%s  %s",
		questionStyle.Render(fmt.Sprintf("? %d QUESTIONS", questions)),
		profileStyle.Render(fmt.Sprintf("✦ %d SCHOOLS", profiles)),
	)
	hint := theme.Hint.Render("Every answer earns points for one school of magic.")

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(info + "\n" + hint)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines when compact.
func renderMenu(items []string, selected int, cw int, compact bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Padding(0, 1)

	if !compact {
		selectedBtn = selectedBtn.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Accent)
		normalBtn = normalBtn.Border(lipgloss.RoundedBorder()).BorderForeground(theme.Border)
	}

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame wraps content in a double-border frame, centered vertically
// and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
