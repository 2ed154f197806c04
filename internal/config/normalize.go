package config

import (
	"strings"

	"quizgen/internal/spec"
)

// Defaults applied when the config leaves a quiz setting empty.
const (
	DefaultFixedCount   = 36
	DefaultRandomCount  = 36
	DefaultTimerSeconds = 3600
	DefaultPassRatio    = 0.65
	DefaultHTMLOutput   = "quiz.html"
	DefaultPoolOutput   = "questions.json"
	DefaultSQLiteTable  = "questions"
)

func Normalize(cfg *spec.Config) {
	cfg.Title = strings.TrimSpace(cfg.Title)
	for i := range cfg.Sources {
		source := &cfg.Sources[i]
		source.Key = strings.TrimSpace(source.Key)
		source.Path = strings.TrimSpace(source.Path)
		source.Label = strings.TrimSpace(source.Label)
		if source.Label == "" {
			source.Label = source.Key
		}
		source.Format = strings.ToLower(strings.TrimSpace(source.Format))
		if source.Format == "" {
			source.Format = FormatForPath(source.Path)
		}
		if source.Format == FormatSQLite && strings.TrimSpace(source.Table) == "" {
			source.Table = DefaultSQLiteTable
		}
	}
	if cfg.Quiz.PrimarySource == "" && len(cfg.Sources) > 0 {
		cfg.Quiz.PrimarySource = cfg.Sources[0].Key
	}
	if cfg.Quiz.FixedCount == 0 {
		cfg.Quiz.FixedCount = DefaultFixedCount
	}
	if cfg.Quiz.RandomCount == 0 {
		cfg.Quiz.RandomCount = DefaultRandomCount
	}
	if cfg.Quiz.TimerSeconds == 0 {
		cfg.Quiz.TimerSeconds = DefaultTimerSeconds
	}
	if cfg.Quiz.PassRatio == 0 {
		cfg.Quiz.PassRatio = DefaultPassRatio
	}
	if cfg.Output.HTML == "" {
		cfg.Output.HTML = DefaultHTMLOutput
	}
	if cfg.Output.Pool == "" {
		cfg.Output.Pool = DefaultPoolOutput
	}
}
