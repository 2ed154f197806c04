package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

const projectConfig = `version: 1
title: "Samfunnskunnskap"
sources:
  - key: f1
    label: "Familie og helse"
    path: "familie.txt"
  - key: f2
    path: "norge.txt"
  - key: f3
    path: "utanding.docx"
quiz:
  fixed_count: 3
  random_count: 3
  timer_seconds: 900
  pass_ratio: 0.65
output:
  html: "site/quiz.html"
  pool: "questions.json"
`

const familieText = `Spørsmål 1
Hvem har ansvar for barnehagen?
A. Staten
*B. Kommunen
C. Fylket

Hva heter Norges nasjonaldag?
*A. 17. mai
B. 1. mai
`

const norgeText = `Hva er Stortinget?
A. Regjeringen
*B. Nasjonalforsamlingen

Uten fasit?
A. ja
B. nei
`

// writeProject lays out a project with two text sources and one missing
// document, and returns the config path.
func writeProject(t *testing.T) string {
	t.Helper()
	specPath, err := layoutProject(t.TempDir())
	if err != nil {
		t.Fatalf("layout project: %v", err)
	}
	return specPath
}

func layoutProject(dir string) (string, error) {
	specPath := filepath.Join(dir, ".quizgen", "config.yml")
	if err := os.MkdirAll(filepath.Dir(specPath), 0o755); err != nil {
		return "", err
	}
	files := map[string]string{
		specPath:                          projectConfig,
		filepath.Join(dir, "familie.txt"): familieText,
		filepath.Join(dir, "norge.txt"):   norgeText,
	}
	for path, body := range files {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return "", err
		}
	}
	return specPath, nil
}

// projectRoot returns the directory holding .quizgen.
func projectRoot(specPath string) string {
	return filepath.Dir(filepath.Dir(specPath))
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// withPlayInput scripts the plain player input.
func withPlayInput(t *testing.T, in io.Reader) {
	t.Helper()
	original := playInput
	playInput = in
	t.Cleanup(func() { playInput = original })
}

// withTerminal forces the TTY decision.
func withTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

func writeBytes(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
