package quiz

import (
	"testing"
	"time"

	"quizgen/internal/testutil"
)

// TestPassThreshold verifies the threshold uses the larger configured size.
func TestPassThreshold(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		want     int
	}{
		{name: "default", settings: defaultSettings(), want: 23},
		{name: "max of sizes", settings: Settings{FixedCount: 10, RandomCount: 40, PassRatio: 0.5}, want: 20},
		{name: "rounds half up", settings: Settings{FixedCount: 5, RandomCount: 5, PassRatio: 0.5}, want: 3},
		{name: "full ratio", settings: Settings{FixedCount: 7, RandomCount: 3, PassRatio: 1}, want: 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PassThreshold(tc.settings); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

// TestScoreMixedAnswers covers 20 correct, 6 wrong and 10 skipped out of 36.
func TestScoreMixedAnswers(t *testing.T) {
	pool := testutil.NumberedPool(40, 30, 30)
	session, err := Build(ModeFixed, pool, defaultSettings(), seeded(9), testStart)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, item := range session.Items {
		switch {
		case i < 20:
			session.Answers[i] = item.Correct
		case i < 26:
			session.Answers[i] = (item.Correct + 1) % len(item.Options)
		}
	}
	finished := testStart.Add(42 * time.Minute)
	result := Score(session, defaultSettings(), finished, FinishManual)
	if result.Correct != 20 || result.Wrong != 6 || result.Skipped != 10 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Correct+result.Wrong+result.Skipped != result.Total || result.Total != 36 {
		t.Fatalf("counts do not sum to total: %+v", result)
	}
	if result.Threshold != 23 || result.Passed {
		t.Fatalf("expected threshold 23 and fail, got %+v", result)
	}
	if result.Verdict() != "FAILED" {
		t.Fatalf("expected FAILED verdict, got %s", result.Verdict())
	}
	if result.Elapsed != 42*time.Minute {
		t.Fatalf("expected elapsed 42m, got %s", result.Elapsed)
	}
}

// TestScorePassesAtThreshold verifies a score equal to the threshold passes.
func TestScorePassesAtThreshold(t *testing.T) {
	session, err := Build(ModeFixed, testutil.NumberedPool(36), defaultSettings(), seeded(2), testStart)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i := 0; i < 23; i++ {
		session.Answers[i] = session.Items[i].Correct
	}
	result := Score(session, defaultSettings(), testStart, FinishTimeout)
	if !result.Passed || result.Verdict() != "PASSED" {
		t.Fatalf("expected pass at threshold, got %+v", result)
	}
	if result.Reason != FinishTimeout {
		t.Fatalf("expected timeout reason, got %s", result.Reason)
	}
}

// TestScoreShortfallKeepsConfiguredThreshold verifies the threshold ignores delivered size.
func TestScoreShortfallKeepsConfiguredThreshold(t *testing.T) {
	session, err := Build(ModeFixed, testutil.NumberedPool(20), defaultSettings(), seeded(2), testStart)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i, item := range session.Items {
		session.Answers[i] = item.Correct
	}
	result := Score(session, defaultSettings(), testStart, FinishManual)
	if result.Correct != 20 || result.Threshold != 23 || result.Passed {
		t.Fatalf("expected 20/23 fail, got %+v", result)
	}
	if result.Shortfall != 16 {
		t.Fatalf("expected shortfall 16, got %d", result.Shortfall)
	}
}
