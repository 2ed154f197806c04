package spec

import "testing"

// TestParseConfigValid verifies valid config parsing succeeds.
func TestParseConfigValid(t *testing.T) {
	data := []byte(`version: 1
title: "Samfunnskunnskap"
sources:
  - key: f1
    label: "Familie og helse"
    path: "familie helse.docx"
  - key: f2
    path: "Norge.docx"
    format: docx
quiz:
  primary_source: f1
  fixed_count: 36
  random_count: 36
output:
  html: "quiz.html"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Quiz.FixedCount != 36 || cfg.Quiz.PrimarySource != "f1" {
		t.Fatalf("unexpected quiz config: %+v", cfg.Quiz)
	}
	keys := cfg.SourceKeys()
	if len(keys) != 2 || keys[0] != "f1" || keys[1] != "f2" {
		t.Fatalf("unexpected source keys: %v", keys)
	}
}

// TestParseConfigUnknownField verifies unknown fields are rejected.
func TestParseConfigUnknownField(t *testing.T) {
	data := []byte(`version: 1
quiz:
  fixed_count: 10
  shuffle_everything: true
`)
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseConfigRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseConfigRejectsMultipleDocs(t *testing.T) {
	data := []byte("version: 1\n---\nversion: 1\n")
	if _, err := ParseConfig(data); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}

// TestParseConfigEmpty verifies an empty file gets a readable error.
func TestParseConfigEmpty(t *testing.T) {
	_, err := ParseConfig([]byte("  \n"))
	if err == nil || err.Error() != "parse config: file is empty" {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

// TestParseConfigSkipsBOM verifies files saved with a byte order mark parse.
func TestParseConfigSkipsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("version: 1\ntitle: \"Prøve\"\n")...)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Title != "Prøve" {
		t.Fatalf("unexpected title %q", cfg.Title)
	}
}
