package config

import (
	"fmt"
	"strings"

	"quizgen/internal/spec"
)

// validateSources checks source entries and returns the set of valid keys.
func validateSources(cfg *spec.Config, add issueAdder) map[string]struct{} {
	keys := map[string]struct{}{}
	if len(cfg.Sources) == 0 {
		add("sources", "at least one source is required")
	}
	for i, source := range cfg.Sources {
		fieldPrefix := fmt.Sprintf("sources[%d]", i)
		if source.Key == "" {
			add(fieldPrefix+".key", "is required")
		} else if _, exists := keys[source.Key]; exists {
			add("sources.key", "duplicate key %q", source.Key)
		} else {
			keys[source.Key] = struct{}{}
		}
		if source.Path == "" {
			add(fieldPrefix+".path", "is required")
		}
		switch {
		case source.Format == "":
			add(fieldPrefix+".format", "cannot be inferred from path; set it explicitly")
		case !IsKnownFormat(source.Format):
			add(fieldPrefix+".format", "unsupported format %q", source.Format)
		}
		table := strings.TrimSpace(source.Table)
		switch {
		case source.Format != FormatSQLite && table != "":
			add(fieldPrefix+".table", "is only valid for sqlite sources")
		case table != "" && !IsIdentifier(table):
			add(fieldPrefix+".table", "invalid table name %q", table)
		}
	}
	return keys
}
