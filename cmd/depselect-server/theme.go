package main

import (
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// loadTheme reads a theme manifest (YAML or JSON) and validates it by
// registering it with a go-theme registry.
func loadTheme(path, variant string) (*theme.Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}
	var manifest theme.Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("decode theme %s: %w", path, err)
	}
	if err := theme.NewRegistry().Register(&manifest); err != nil {
		return nil, fmt.Errorf("register theme %s: %w", path, err)
	}
	if variant = strings.TrimSpace(variant); variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme %s: unknown variant %q", manifest.Name, variant)
		}
	}
	return &manifest, nil
}
