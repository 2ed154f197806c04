package quiz

import (
	"math/rand/v2"
	"testing"
	"time"

	"quizgen/internal/question"
	"quizgen/internal/testutil"
)

var testStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func defaultSettings() Settings {
	return Settings{
		PrimarySource: "f1",
		FixedCount:    36,
		RandomCount:   36,
		TimerSeconds:  3600,
		PassRatio:     0.65,
	}
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type harness struct {
	ctrl      *Controller
	scheduler *testutil.ManualScheduler
	clock     *testutil.FakeClock
	events    *[]string
}

func newHarness(t *testing.T, pool question.Pool, settings Settings) harness {
	t.Helper()
	events := []string{}
	scheduler := testutil.NewManualScheduler()
	clock := testutil.NewFakeClock(testStart)
	ctrl := NewController(pool, settings, Options{
		Scheduler: scheduler,
		Now:       clock.Now,
		Rand:      seeded(7),
		Observer: ObserverFuncs{
			SessionStart: func(info SessionInfo) { events = append(events, "start:"+string(info.Mode)) },
			Finish:       func(result Result) { events = append(events, "finish:"+string(result.Reason)) },
			Abandon:      func(info SessionInfo, answered int) { events = append(events, "abandon") },
		},
	})
	t.Cleanup(ctrl.Close)
	return harness{ctrl: ctrl, scheduler: scheduler, clock: clock, events: &events}
}

// originalCorrect maps an item back to the correct option text in the pool.
func originalCorrect(t *testing.T, pool question.Pool, item Item) string {
	t.Helper()
	source, ok := pool.Source(item.Source)
	if !ok {
		t.Fatalf("item references unknown source %q", item.Source)
	}
	return source.Questions[item.SourceIndex].CorrectOption()
}
