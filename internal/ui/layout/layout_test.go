package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		width, height int
		want          bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.width, tt.height); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	header := RenderHeader("Quiz", "Question 3 / 20", 100)
	for _, want := range []string{"Wizard Quiz", "Quiz", "Question 3 / 20"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
	if h := lipgloss.Height(header); h != HeaderHeight {
		t.Errorf("header height = %d, want %d", h, HeaderHeight)
	}
}

func TestRenderFooter(t *testing.T) {
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	if !strings.Contains(footer, "Esc") || !strings.Contains(footer, "Back") {
		t.Errorf("footer missing hint:\n%s", footer)
	}
}
