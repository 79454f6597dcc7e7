package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wizardquiz/internal/content"
	"github.com/abhisek/wizardquiz/internal/router"
	"github.com/abhisek/wizardquiz/internal/screen"
	"github.com/abhisek/wizardquiz/internal/session"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                    { return "stub" }
func (stubScreen) Title() string                           { return "stub" }

// finishedSession answers every question with the first option.
func finishedSession(t *testing.T) *session.Session {
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
	for s.Phase() == session.PhaseInProgress {
		if err := s.SubmitChoice(0); err != nil {
			t.Fatalf("SubmitChoice: %v", err)
		}
	}
	return s
}

func replayStub() screen.Screen { return stubScreen{} }

func TestResultScreen_Title(t *testing.T) {
	s := New(finishedSession(t), replayStub)
	if s.Title() != "Your Result" {
		t.Errorf("Title = %q, want %q", s.Title(), "Your Result")
	}
}

func TestResultScreen_ShowsWinner(t *testing.T) {
	sess := finishedSession(t)
	s := New(sess, replayStub)

	res, err := sess.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	view := s.View(100, 40)
	want := strings.ToUpper(res.Winner.Category.String())
	if !strings.Contains(view, want) {
		t.Errorf("view missing winner %q", want)
	}
	for _, st := range res.Ranking {
		if !strings.Contains(view, st.Category.String()) {
			t.Errorf("breakdown missing %s", st.Category)
		}
	}
}

func TestResultScreen_PlayAgain(t *testing.T) {
	sess := finishedSession(t)
	s := New(sess, replayStub)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on PLAY AGAIN")
	}
	if sess.Phase() != session.PhaseInProgress {
		t.Errorf("Phase = %v, want in-progress after PLAY AGAIN", sess.Phase())
	}
	if sess.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", sess.CurrentIndex())
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "stub" {
		t.Errorf("expected replay screen, got %q", msg.Screen.Title())
	}
}

func TestResultScreen_Home(t *testing.T) {
	s := New(finishedSession(t), replayStub)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on HOME")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestResultScreen_Esc(t *testing.T) {
	s := New(finishedSession(t), replayStub)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestResultScreen_UnfinishedSession(t *testing.T) {
	bank, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	sess, err := session.New(bank, nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	s := New(sess, replayStub)
	if view := s.View(80, 24); !strings.Contains(view, "invalid session state") {
		t.Errorf("expected state error in view, got:\n%s", view)
	}
}

func TestResultScreen_KeyHints(t *testing.T) {
	s := New(finishedSession(t), replayStub)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
