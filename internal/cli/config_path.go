package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizgen/internal/config"
	"quizgen/internal/spec"
)

// resolveSpecPath normalizes a config path or finds it from CWD.
func resolveSpecPath(specPath string) (string, error) {
	if strings.TrimSpace(specPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("resolve spec path: %w", err)
	}
	return abs, nil
}

// project is a loaded config together with the directory its paths are relative to.
type project struct {
	cfg  spec.Config
	root string
}

// loadProject resolves and loads the config used by the data commands.
func loadProject(specPath string) (project, error) {
	resolved, err := resolveSpecPath(specPath)
	if err != nil {
		return project{}, err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return project{}, err
	}
	return project{cfg: cfg, root: config.ProjectRootFromConfigPath(resolved)}, nil
}

// outputPath prefers an explicit flag value, else the configured path under the project root.
func (p project) outputPath(flagValue, configured string) string {
	if value := strings.TrimSpace(flagValue); value != "" {
		return value
	}
	return config.ResolvePath(p.root, configured)
}

// labels maps source keys to display labels.
func (p project) labels() map[string]string {
	labels := make(map[string]string, len(p.cfg.Sources))
	for _, source := range p.cfg.Sources {
		labels[source.Key] = source.Label
	}
	return labels
}
