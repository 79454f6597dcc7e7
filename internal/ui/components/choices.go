package components

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wizardquiz/internal/quiz"
	"github.com/abhisek/wizardquiz/internal/ui/theme"
)

// ChoiceList shows a question's options and reports which one was picked.
// Options can be picked by number (1-9) or by moving the cursor and
// pressing Enter.
type ChoiceList struct {
	Options  []quiz.Option
	Selected int
	Keys     NavKeys
	Number   key.Binding
}

// NewChoiceList creates a list over opts with the cursor on the first one.
func NewChoiceList(opts []quiz.Option) ChoiceList {
	return ChoiceList{
		Options: opts,
		Keys:    DefaultNavKeys(),
		Number: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp(fmt.Sprintf("1-%d", min(len(opts), 9)), "answer"),
		),
	}
}

// Update moves the cursor. It returns the picked option index, or -1 when
// msg did not pick one.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, -1
	}

	switch {
	case key.Matches(kmsg, c.Number):
		n, err := strconv.Atoi(kmsg.String())
		if err != nil || n < 1 || n > len(c.Options) {
			return c, -1
		}
		c.Selected = n - 1
		return c, c.Selected
	case key.Matches(kmsg, c.Keys.Up):
		if c.Selected > 0 {
			c.Selected--
		}
	case key.Matches(kmsg, c.Keys.Down):
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case key.Matches(kmsg, c.Keys.Select):
		return c, c.Selected
	}
	return c, -1
}

// View renders one line per option with its point value.
func (c ChoiceList) View(width int) string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		style := theme.Unselected
		if i == c.Selected {
			prefix = "▸ "
			style = theme.Selected
		}

		label := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt.Text)
		points := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("+%d pts", opt.Points))

		gap := width - lipgloss.Width(label) - lipgloss.Width(points)
		if gap < 2 {
			gap = 2
		}
		s += style.Render(label) + fmt.Sprintf("%*s", gap, "") + points + "\n"
	}
	return s
}
