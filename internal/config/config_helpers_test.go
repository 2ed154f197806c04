package config

import "quizgen/internal/spec"

// validConfig returns a normalized config that passes validation.
func validConfig() spec.Config {
	cfg := spec.Config{
		Version: 1,
		Title:   "Samfunnskunnskap",
		Sources: []spec.SourceConfig{
			{Key: "f1", Path: "familie helse.docx"},
			{Key: "f2", Path: "Norge.docx"},
			{Key: "f3", Path: "utanding.docx"},
		},
	}
	Normalize(&cfg)
	return cfg
}
