package question

import "strings"

// Option count bounds accepted at the extraction boundary.
const (
	MinOptions = 2
	MaxOptions = 3
)

// Valid reports whether a question satisfies the runtime invariants.
func Valid(q Question) bool {
	if strings.TrimSpace(q.Text) == "" {
		return false
	}
	if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
		return false
	}
	for _, option := range q.Options {
		if strings.TrimSpace(option) == "" {
			return false
		}
	}
	return q.Correct >= 0 && q.Correct < len(q.Options)
}

// Sanitize trims whitespace and drops malformed questions, returning the kept
// questions and the number dropped.
func Sanitize(questions []Question) ([]Question, int) {
	kept := make([]Question, 0, len(questions))
	dropped := 0
	for _, q := range questions {
		q = normalizeQuestion(q)
		if !Valid(q) {
			dropped++
			continue
		}
		kept = append(kept, q)
	}
	return kept, dropped
}

func normalizeQuestion(q Question) Question {
	options := make([]string, len(q.Options))
	for i, option := range q.Options {
		options[i] = strings.TrimSpace(option)
	}
	return Question{
		Text:    strings.TrimSpace(q.Text),
		Options: options,
		Correct: q.Correct,
	}
}
