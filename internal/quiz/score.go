package quiz

import (
	"math"
	"time"
)

// FinishReason records why a session ended.
type FinishReason string

const (
	FinishManual  FinishReason = "manual"
	FinishTimeout FinishReason = "timeout"
)

// Result is the scored outcome of a finished session.
type Result struct {
	SessionID  string
	Mode       Mode
	Total      int
	Correct    int
	Wrong      int
	Skipped    int
	Threshold  int
	Passed     bool
	Elapsed    time.Duration
	FinishedAt time.Time
	Reason     FinishReason
	Shortfall  int
}

// PassThreshold is round(PassRatio * max(FixedCount, RandomCount)). It is
// derived from the configured sizes, not from how many items a session got.
func PassThreshold(settings Settings) int {
	size := max(settings.FixedCount, settings.RandomCount)
	return int(math.Round(settings.PassRatio * float64(size)))
}

// Score tallies a session. It does not modify the session.
func Score(session *Session, settings Settings, finishedAt time.Time, reason FinishReason) Result {
	result := Result{
		SessionID:  session.ID,
		Mode:       session.Mode,
		Total:      len(session.Items),
		Threshold:  PassThreshold(settings),
		FinishedAt: finishedAt,
		Reason:     reason,
		Shortfall:  session.Shortfall(),
	}
	for i, item := range session.Items {
		switch answer := session.Answers[i]; {
		case answer == NoAnswer:
			result.Skipped++
		case answer == item.Correct:
			result.Correct++
		default:
			result.Wrong++
		}
	}
	result.Passed = result.Correct >= result.Threshold
	if elapsed := finishedAt.Sub(session.StartedAt); elapsed > 0 {
		result.Elapsed = elapsed
	}
	return result
}

// Verdict returns the display verdict for a result.
func (r Result) Verdict() string {
	if r.Passed {
		return "PASSED"
	}
	return "FAILED"
}
