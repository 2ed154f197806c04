package config

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Supported source formats.
const (
	FormatDOCX   = "docx"
	FormatPDF    = "pdf"
	FormatText   = "text"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"
)

var knownFormats = map[string]struct{}{
	FormatDOCX:   {},
	FormatPDF:    {},
	FormatText:   {},
	FormatJSON:   {},
	FormatYAML:   {},
	FormatSQLite: {},
}

// FormatForPath infers a source format from the file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return FormatDOCX
	case ".pdf":
		return FormatPDF
	case ".txt", ".md":
		return FormatText
	case ".json":
		return FormatJSON
	case ".yml", ".yaml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return ""
	}
}

// IsKnownFormat reports whether a format name is supported.
func IsKnownFormat(format string) bool {
	_, ok := knownFormats[format]
	return ok
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsIdentifier reports whether name is a plain SQL identifier.
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}
