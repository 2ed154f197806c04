package play

import (
	"bytes"
	"io"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizgen/internal/quiz"
	"quizgen/internal/testutil"
)

func newController(t *testing.T, sizes ...int) (*quiz.Controller, *testutil.ManualScheduler) {
	t.Helper()
	scheduler := testutil.NewManualScheduler()
	clock := testutil.NewFakeClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	ctrl := quiz.NewController(testutil.NumberedPool(sizes...), quiz.Settings{
		PrimarySource: "f1",
		FixedCount:    3,
		RandomCount:   3,
		TimerSeconds:  900,
		PassRatio:     0.65,
	}, quiz.Options{
		Scheduler: scheduler,
		Now:       clock.Now,
		Rand:      rand.New(rand.NewPCG(1, 2)),
	})
	t.Cleanup(ctrl.Close)
	return ctrl, scheduler
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		updated, ok := next.(Model)
		if !ok {
			t.Fatalf("expected Model, got %T", next)
		}
		m = updated
	}
	return m
}

const (
	testutilTimeout  = 2 * time.Second
	testutilInterval = 5 * time.Millisecond
)

func ioPipe() (*io.PipeReader, *io.PipeWriter) {
	return io.Pipe()
}

// safeBuffer is a bytes.Buffer safe for one writer and concurrent readers.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
