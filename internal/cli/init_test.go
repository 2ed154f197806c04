package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizgen/internal/config"
)

func withInitInput(t *testing.T, in io.Reader) {
	t.Helper()
	original := initInput
	initInput = in
	t.Cleanup(func() { initInput = original })
}

func TestInitCommandCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, ".quizgen", "config.yml")
	withInitInput(t, strings.NewReader(""))

	var out, err bytes.Buffer
	code := Run([]string{"init", "--spec", specPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Fatalf("expected output to include writes, got %q", out.String())
	}
	cfg, loadErr := config.Load(specPath)
	if loadErr != nil {
		t.Fatalf("load scaffolded config: %v", loadErr)
	}
	if cfg.Title != defaultTitle {
		t.Fatalf("expected default title, got %q", cfg.Title)
	}
	if len(cfg.Sources) != len(config.DefaultSourcePaths) {
		t.Fatalf("expected %d sources, got %d", len(config.DefaultSourcePaths), len(cfg.Sources))
	}
}

func TestInitCommandUsesAnswers(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	withInitInput(t, strings.NewReader("y\nBorgerprøve\na.docx\nb.docx\n\nprove.html\n"))

	var out, err bytes.Buffer
	code := Run([]string{"init"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	cfg, loadErr := config.Load(config.ConfigPath(dir))
	if loadErr != nil {
		t.Fatalf("load scaffolded config: %v", loadErr)
	}
	if cfg.Title != "Borgerprøve" {
		t.Fatalf("expected title from answers, got %q", cfg.Title)
	}
	paths := []string{cfg.Sources[0].Path, cfg.Sources[1].Path, cfg.Sources[2].Path}
	want := []string{"a.docx", "b.docx", config.DefaultSourcePaths[2]}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("source %d: expected %q, got %q", i, want[i], paths[i])
		}
	}
	if cfg.Output.HTML != "prove.html" {
		t.Fatalf("expected html output from answers, got %q", cfg.Output.HTML)
	}
}

func TestInitCommandCancelled(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, ".quizgen", "config.yml")
	withInitInput(t, strings.NewReader("n\n"))

	var out, err bytes.Buffer
	code := Run([]string{"init", "--spec", specPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Init cancelled.") {
		t.Fatalf("expected cancel message, got %q", err.String())
	}
	if _, statErr := os.Stat(specPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config file, got %v", statErr)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "quizgen.yml")
	if err := os.WriteFile(specPath, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"init", "--spec", specPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}

func TestInitCommandRepromptsBadPaths(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, ".quizgen", "config.yml")
	withInitInput(t, strings.NewReader("\n\nnotes.rtf\nnotes.docx\n\n\nquiz.txt\nquiz.html\n"))

	var out, err bytes.Buffer
	code := Run([]string{"init", "--spec", specPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	for _, want := range []string{`unsupported document type ".rtf"`, "page name must end in .html"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in prompts, got %q", want, out.String())
		}
	}
	cfg, loadErr := config.Load(specPath)
	if loadErr != nil {
		t.Fatalf("load scaffolded config: %v", loadErr)
	}
	if cfg.Sources[0].Path != "notes.docx" || cfg.Output.HTML != "quiz.html" {
		t.Fatalf("unexpected answers in config: %+v %+v", cfg.Sources[0], cfg.Output)
	}
}

func TestInitCommandFailsOnBadAnswerAtEOF(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, ".quizgen", "config.yml")
	withInitInput(t, strings.NewReader("y\n\nnotes.rtf"))

	var out, err bytes.Buffer
	code := Run([]string{"init", "--spec", specPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Source f1 document: unsupported document type") {
		t.Fatalf("expected prompt error, got %q", err.String())
	}
}
