package page

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed assets/*
var embeddedAssets embed.FS

// Logical asset names listed in assets/manifest.json.
const (
	ScriptAsset = "runtime.js"
	StyleAsset  = "styles.css"
)

// Assets resolves logical asset names to embedded file contents.
type Assets struct {
	files    fs.FS
	manifest map[string]string
}

// LoadAssets opens the embedded asset set.
func LoadAssets() (Assets, error) {
	files, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return Assets{}, fmt.Errorf("page: open embedded assets: %w", err)
	}
	manifest, err := loadManifest(files)
	if err != nil {
		return Assets{}, err
	}
	return Assets{files: files, manifest: manifest}, nil
}

// Read returns the contents of a logical asset.
func (a Assets) Read(logicalName string) (string, error) {
	filename, ok := a.manifest[logicalName]
	if !ok {
		return "", fmt.Errorf("page: asset not found: %s", logicalName)
	}
	data, err := fs.ReadFile(a.files, filename)
	if err != nil {
		return "", fmt.Errorf("page: read asset %s: %w", logicalName, err)
	}
	return string(data), nil
}

func loadManifest(files fs.FS) (map[string]string, error) {
	data, err := fs.ReadFile(files, "manifest.json")
	if err != nil {
		return nil, fmt.Errorf("page: read manifest: %w", err)
	}
	var manifest map[string]string
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("page: parse manifest: %w", err)
	}
	if len(manifest) == 0 {
		return nil, errors.New("page: manifest is empty")
	}
	return manifest, nil
}
