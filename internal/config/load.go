package config

import (
	"fmt"
	"os"
	"path/filepath"

	"quizgen/internal/spec"
)

// Load reads a config file and returns it normalized and validated. Parse
// errors name the file; validation errors are returned as *ValidationError.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := spec.ParseConfig(data)
	if err != nil {
		return spec.Config{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}
