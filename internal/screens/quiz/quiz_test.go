package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wizardquiz/internal/content"
	"github.com/abhisek/wizardquiz/internal/router"
	"github.com/abhisek/wizardquiz/internal/screens/result"
	"github.com/abhisek/wizardquiz/internal/session"
)

func startedSession(t *testing.T) *session.Session {
	t.Helper()
	bank, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	s, err := session.New(bank, nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	s.Start()
	return s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(startedSession(t))
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_ProgressLabel(t *testing.T) {
	s := New(startedSession(t))
	if got := s.ProgressLabel(); got != "Question 1 / 20" {
		t.Errorf("ProgressLabel = %q, want %q", got, "Question 1 / 20")
	}
}

func TestQuizScreen_View(t *testing.T) {
	sess := startedSession(t)
	s := New(sess)
	view := s.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty quiz view")
	}
	q, _ := sess.CurrentQuestion()
	if !strings.Contains(view, q.Options[0].Text) {
		t.Errorf("view missing first option %q", q.Options[0].Text)
	}
}

func TestQuizScreen_NumberKeyAnswers(t *testing.T) {
	sess := startedSession(t)
	s := New(sess)

	_, cmd := s.Update(keyPress('2'))
	if cmd != nil {
		t.Error("expected no command before the last question")
	}
	if sess.CurrentIndex() != 1 {
		t.Errorf("CurrentIndex = %d, want 1", sess.CurrentIndex())
	}
	if _, ok := sess.LastGain(); !ok {
		t.Error("expected a last gain after answering")
	}
	if got := s.ProgressLabel(); got != "Question 2 / 20" {
		t.Errorf("ProgressLabel = %q, want %q", got, "Question 2 / 20")
	}
}

func TestQuizScreen_EnterAnswersSelected(t *testing.T) {
	sess := startedSession(t)
	s := New(sess)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	gain, ok := sess.LastGain()
	if !ok {
		t.Fatal("expected a last gain after Enter")
	}
	q := sess.Bank().Questions[0]
	if gain.Category != q.Options[1].Category {
		t.Errorf("gain category = %v, want %v", gain.Category, q.Options[1].Category)
	}
}

func TestQuizScreen_IgnoresOutOfRangeNumber(t *testing.T) {
	sess := startedSession(t)
	s := New(sess)

	s.Update(keyPress('9'))
	if sess.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", sess.CurrentIndex())
	}
}

func TestQuizScreen_FinishReplacesWithResult(t *testing.T) {
	sess := startedSession(t)
	s := New(sess)

	var cmd tea.Cmd
	for i := 0; i < sess.Total(); i++ {
		_, cmd = s.Update(keyPress('1'))
	}

	if sess.Phase() != session.PhaseFinished {
		t.Fatalf("Phase = %v, want finished", sess.Phase())
	}
	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*result.ResultScreen); !ok {
		t.Errorf("expected result screen, got %T", msg.Screen)
	}
}

func TestQuizScreen_EscAsksBeforeLeaving(t *testing.T) {
	sess := startedSession(t)
	s := New(sess)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected Esc to ask for confirmation, not leave")
	}
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2 while confirming", len(s.KeyHints()))
	}

	// Answer keys are ignored while confirming.
	s.Update(keyPress('1'))
	if sess.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", sess.CurrentIndex())
	}

	_, cmd = s.Update(keyPress('n'))
	if cmd != nil {
		t.Error("expected n to cancel without a command")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd = s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command on y (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestQuizScreen_NotStartedShowsError(t *testing.T) {
	bank, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	sess, err := session.New(bank, nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	s := New(sess)
	if view := s.View(80, 24); !strings.Contains(view, "Something went wrong") {
		t.Errorf("expected error view, got:\n%s", view)
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Error("expected any key to go back from the error view")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := New(startedSession(t))
	if len(s.KeyHints()) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(s.KeyHints()))
	}
}
