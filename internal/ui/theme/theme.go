package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wizardquiz/internal/quiz"
)

// Color palette: night sky with violet and green accents
var (
	Primary   = lipgloss.Color("#7C3AED") // Violet
	Secondary = lipgloss.Color("#22C55E") // Green
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#12203A") // Answer card
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// CategoryColor returns the accent used for a wizard profile.
func CategoryColor(c quiz.Category) color.Color {
	switch c {
	case quiz.Elementalist:
		return lipgloss.Color("#38BDF8") // Sky
	case quiz.Necromancer:
		return lipgloss.Color("#A1A1AA") // Ash
	case quiz.Illusionist:
		return lipgloss.Color("#C084FC") // Lilac
	case quiz.Healer:
		return lipgloss.Color("#4ADE80") // Leaf
	default:
		return Text
	}
}
