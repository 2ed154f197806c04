package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"quizgen/internal/spec"
)

// ScaffoldOptions carries the answers collected by the init prompts.
type ScaffoldOptions struct {
	Title       string
	SourcePaths []string
	HTMLOutput  string
}

// DefaultSourcePaths lists the three source documents a new project starts with.
var DefaultSourcePaths = []string{"familie helse.docx", "Norge.docx", "utanding.docx"}

// ScaffoldConfig builds the starter config for the given options.
func ScaffoldConfig(opts ScaffoldOptions) spec.Config {
	paths := opts.SourcePaths
	if len(paths) == 0 {
		paths = DefaultSourcePaths
	}
	sources := make([]spec.SourceConfig, 0, len(paths))
	for i, path := range paths {
		sources = append(sources, spec.SourceConfig{
			Key:  fmt.Sprintf("f%d", i+1),
			Path: path,
		})
	}
	htmlOutput := opts.HTMLOutput
	if htmlOutput == "" {
		htmlOutput = DefaultHTMLOutput
	}
	return spec.Config{
		Version: 1,
		Title:   opts.Title,
		Sources: sources,
		Quiz: spec.QuizConfig{
			PrimarySource: sources[0].Key,
			FixedCount:    DefaultFixedCount,
			RandomCount:   DefaultRandomCount,
			TimerSeconds:  DefaultTimerSeconds,
			PassRatio:     DefaultPassRatio,
		},
		Output: spec.OutputConfig{
			HTML: htmlOutput,
			Pool: DefaultPoolOutput,
		},
	}
}

// Scaffold writes a starter config file at specPath.
func Scaffold(specPath string, opts ScaffoldOptions) error {
	if specPath == "" {
		return fmt.Errorf("spec path is required")
	}
	if info, err := os.Stat(specPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("spec path %q is a directory", specPath)
		}
		return fmt.Errorf("spec file already exists at %q", specPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat spec file: %w", err)
	}

	payload, err := yaml.Marshal(ScaffoldConfig(opts))
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(specPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(specPath, payload, 0o644); err != nil {
		return fmt.Errorf("write spec file: %w", err)
	}
	return nil
}
