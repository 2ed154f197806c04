package config

import "quizgen/internal/spec"

// validateQuiz checks session sizing, timer, and pass ratio settings.
func validateQuiz(cfg *spec.Config, sourceKeys map[string]struct{}, add issueAdder) {
	quiz := cfg.Quiz
	if quiz.PrimarySource == "" {
		add("quiz.primary_source", "is required")
	} else if _, ok := sourceKeys[quiz.PrimarySource]; !ok {
		add("quiz.primary_source", "unknown source %q", quiz.PrimarySource)
	}
	if quiz.FixedCount < 0 {
		add("quiz.fixed_count", "must be > 0")
	}
	if quiz.RandomCount < 0 {
		add("quiz.random_count", "must be > 0")
	}
	if quiz.TimerSeconds < 0 {
		add("quiz.timer_seconds", "must be > 0")
	}
	if quiz.PassRatio < 0 || quiz.PassRatio > 1 {
		add("quiz.pass_ratio", "must be within (0, 1]")
	}
}
