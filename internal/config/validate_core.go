package config

import "quizgen/internal/spec"

// Validate checks a normalized config for correctness.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", "unsupported version %d", cfg.Version)
	}

	sourceKeys := validateSources(cfg, collector.add)
	validateQuiz(cfg, sourceKeys, collector.add)

	return collector.result()
}
