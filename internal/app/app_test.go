package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wizardquiz/internal/content"
	"github.com/abhisek/wizardquiz/internal/router"
	"github.com/abhisek/wizardquiz/internal/session"
)

func testModel(t *testing.T) (AppModel, *session.Session) {
	t.Helper()
	bank, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	sess, err := session.New(bank, nil)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return newAppModel(Options{Session: sess}), sess
}

// drive feeds msg to the model and then every message its commands return,
// the way the Bubble Tea runtime would, skipping batches.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	for msg != nil {
		next, cmd := m.Update(msg)
		m = next.(AppModel)
		if cmd == nil {
			return m
		}
		msg = cmd()
	}
	return m
}

func TestAppModel_StartsOnHome(t *testing.T) {
	m, _ := testModel(t)
	if got := m.activeTitle(); got != "Home" {
		t.Errorf("active = %q, want Home", got)
	}
}

func TestAppModel_PlayThrough(t *testing.T) {
	m, sess := testModel(t)
	m = drive(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.activeTitle(); got != "Quiz" {
		t.Fatalf("active = %q, want Quiz", got)
	}
	if !strings.Contains(m.render(), "Question 1 / 20") {
		t.Error("header missing progress label")
	}

	for i := 0; i < sess.Total(); i++ {
		m = drive(t, m, tea.KeyPressMsg{Code: '1', Text: "1"})
	}
	if got := m.activeTitle(); got != "Your Result" {
		t.Fatalf("active = %q, want Your Result", got)
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2 (home + result)", m.router.Depth())
	}

	// PLAY AGAIN swaps the result for a fresh quiz.
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if got := m.activeTitle(); got != "Quiz" {
		t.Fatalf("active = %q, want Quiz after replay", got)
	}
	if sess.CurrentIndex() != 0 || sess.Phase() != session.PhaseInProgress {
		t.Errorf("session not restarted: index %d phase %v", sess.CurrentIndex(), sess.Phase())
	}
}

func TestAppModel_PopReturnsHome(t *testing.T) {
	m, _ := testModel(t)
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m = drive(t, m, router.PopScreenMsg{})
	if got := m.activeTitle(); got != "Home" {
		t.Errorf("active = %q, want Home", got)
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m, _ := testModel(t)
	m = drive(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}
