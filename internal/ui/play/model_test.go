package play

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quizgen/internal/quiz"
)

// TestModelStartScreen verifies the start screen lists both modes.
func TestModelStartScreen(t *testing.T) {
	ctrl, _ := newController(t, 5, 4)
	m := NewModel(ctrl, Options{Title: "Samfunnskunnskap", NoColor: true})
	view := m.View()
	for _, want := range []string{"Samfunnskunnskap", "[1] Fixed order: 3 questions", "[2] Random selection: 3 questions", "9 questions in the pool"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

// TestModelAnswerAndFinish walks a session through the key bindings.
func TestModelAnswerAndFinish(t *testing.T) {
	ctrl, _ := newController(t, 5)
	m := NewModel(ctrl, Options{NoColor: true})
	m = press(t, m, runes("1"))
	if ctrl.State() != quiz.StateInProgress {
		t.Fatalf("expected in progress, got %s", ctrl.State())
	}
	if !strings.Contains(m.View(), "Question 1 of 3") {
		t.Fatalf("expected question view:\n%s", m.View())
	}

	m = press(t, m, runes("b"), tea.KeyMsg{Type: tea.KeyRight}, runes("a"))
	snap := ctrl.Snapshot()
	if snap.Session.Answers[0] != 1 || snap.Session.Answers[1] != 0 || snap.Session.Current != 1 {
		t.Fatalf("unexpected session state: answers=%v current=%d", snap.Session.Answers, snap.Session.Current)
	}

	m = press(t, m, runes("f"))
	if !strings.Contains(m.View(), "1 questions are unanswered") {
		t.Fatalf("expected finish confirmation:\n%s", m.View())
	}
	m = press(t, m, runes("n"))
	if ctrl.State() != quiz.StateInProgress {
		t.Fatalf("expected cancel to keep the quiz running")
	}
	m = press(t, m, runes("f"), runes("y"))
	if ctrl.State() != quiz.StateFinished {
		t.Fatalf("expected finished, got %s", ctrl.State())
	}
	view := m.View()
	if !strings.Contains(view, "pass mark 2") || !strings.Contains(view, "Correct answer") {
		t.Fatalf("expected results with review table:\n%s", view)
	}

	m = press(t, m, runes("r"))
	if ctrl.State() != quiz.StateInProgress {
		t.Fatalf("expected retry to start a session, got %s", ctrl.State())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if ctrl.State() != quiz.StateStart {
		t.Fatalf("expected esc to abandon, got %s", ctrl.State())
	}
}

// TestModelJumpKeys verifies g with a number and tab both move through the session.
func TestModelJumpKeys(t *testing.T) {
	ctrl, _ := newController(t, 5)
	m := NewModel(ctrl, Options{NoColor: true})
	m = press(t, m, runes("1"), runes("a"))

	m = press(t, m, runes("g"), runes("9"))
	if !strings.Contains(m.View(), "Go to question (1-3): 9_") {
		t.Fatalf("expected jump prompt:\n%s", m.View())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("3"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := ctrl.Snapshot().Session.Current; got != 2 {
		t.Fatalf("expected jump to index 2, got %d", got)
	}
	if m.jumping || strings.Contains(m.View(), "Go to question") {
		t.Fatalf("expected prompt closed after jump:\n%s", m.View())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := ctrl.Snapshot().Session.Current; got != 1 {
		t.Fatalf("expected tab to wrap to first unanswered index 1, got %d", got)
	}

	m = press(t, m, runes("g"), runes("1"), tea.KeyMsg{Type: tea.KeyEsc})
	if got := ctrl.Snapshot().Session.Current; got != 1 || m.jumping {
		t.Fatalf("expected esc to cancel the jump, current=%d jumping=%v", got, m.jumping)
	}
	if ctrl.State() != quiz.StateInProgress {
		t.Fatalf("expected esc in the prompt to keep the quiz, got %s", ctrl.State())
	}
}

// TestNextUnanswered verifies the search wraps and skips the current question.
func TestNextUnanswered(t *testing.T) {
	view := &quiz.QuestionView{Number: 2, Total: 3, Progress: []quiz.ProgressCell{{}, {Current: true}, {Answered: true}}}
	if next, ok := nextUnanswered(view); !ok || next != 0 {
		t.Fatalf("expected index 0, got %d (%v)", next, ok)
	}
	view.Progress[0].Answered = true
	if _, ok := nextUnanswered(view); ok {
		t.Fatalf("expected no other open question")
	}
}

// TestModelRefreshShowsTimeout verifies a refresh tick picks up a timer finish.
func TestModelRefreshShowsTimeout(t *testing.T) {
	ctrl, scheduler := newController(t, 5)
	m := NewModel(ctrl, Options{NoColor: true})
	m = press(t, m, runes("2"))
	if !strings.Contains(m.View(), "Time left 15:00") {
		t.Fatalf("expected clock in view:\n%s", m.View())
	}
	scheduler.FireN(900)
	m = press(t, m, tickMsg{})
	if m.view.Screen != quiz.ScreenResults || !strings.Contains(m.View(), "time ran out") {
		t.Fatalf("expected timeout results:\n%s", m.View())
	}
}

// TestModelQuit verifies q on the start screen quits.
func TestModelQuit(t *testing.T) {
	ctrl, _ := newController(t, 5)
	m := NewModel(ctrl, Options{NoColor: true})
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg")
	}
}

// TestProgressStrip verifies progress cell markers.
func TestProgressStrip(t *testing.T) {
	got := progressStrip([]quiz.ProgressCell{{Answered: true}, {Current: true}, {}})
	if got != "#@." {
		t.Fatalf("expected #@., got %q", got)
	}
}
