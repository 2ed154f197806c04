package quiz

import (
	"fmt"
	"strings"
	"time"

	"quizgen/internal/spec"
)

// Mode selects how a session draws its questions.
type Mode string

const (
	// ModeFixed takes a prefix of the primary source in original order.
	ModeFixed Mode = "fixed"
	// ModeRandom draws a random sample from all sources.
	ModeRandom Mode = "random"
)

// ParseMode converts user input into a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ModeFixed), "f", "1":
		return ModeFixed, nil
	case string(ModeRandom), "r", "2":
		return ModeRandom, nil
	default:
		return "", fmt.Errorf("invalid mode %q (expected fixed|random)", value)
	}
}

// NoAnswer marks an unanswered question in Session.Answers.
const NoAnswer = -1

// Settings holds the runtime constants for session size, timing and passing.
type Settings struct {
	PrimarySource string
	FixedCount    int
	RandomCount   int
	TimerSeconds  int
	PassRatio     float64
}

// SettingsFromConfig maps the quiz section of the config onto runtime settings.
func SettingsFromConfig(cfg spec.QuizConfig) Settings {
	return Settings{
		PrimarySource: cfg.PrimarySource,
		FixedCount:    cfg.FixedCount,
		RandomCount:   cfg.RandomCount,
		TimerSeconds:  cfg.TimerSeconds,
		PassRatio:     cfg.PassRatio,
	}
}

// Requested returns the configured session size for a mode.
func (s Settings) Requested(mode Mode) int {
	if mode == ModeFixed {
		return s.FixedCount
	}
	return s.RandomCount
}

// Item is a question as presented in a session, with its options in
// session-local order.
type Item struct {
	Text        string
	Options     []string
	Correct     int
	Source      string
	SourceIndex int
}

// Session is the mutable state of one quiz attempt.
type Session struct {
	ID               string
	Mode             Mode
	Items            []Item
	Answers          []int
	Current          int
	SecondsRemaining int
	StartedAt        time.Time
	Requested        int
}

// Shortfall returns how many fewer items were delivered than configured.
func (s *Session) Shortfall() int {
	if s == nil || s.Requested <= len(s.Items) {
		return 0
	}
	return s.Requested - len(s.Items)
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Items = make([]Item, len(s.Items))
	for i, item := range s.Items {
		item.Options = append([]string(nil), item.Options...)
		out.Items[i] = item
	}
	out.Answers = append([]int(nil), s.Answers...)
	return &out
}
