package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// ManifestPath points to an optional YAML file describing the demo sections
	ManifestPath string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		ManifestPath: "", // Falls back to the built-in section set
	}
}

// ConfigFromEnv creates a configuration from environment variables.
// Reads ACCORDEON_DEBUG to enable debug mode and ACCORDEON_MANIFEST to
// point at a section manifest file.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if debugStr := os.Getenv("ACCORDEON_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if manifestPath := os.Getenv("ACCORDEON_MANIFEST"); manifestPath != "" {
		cfg.ManifestPath = manifestPath
	}

	return cfg
}

// Manifest describes the window title and the set of collapsible sections
// the demo builds at startup.
type Manifest struct {
	Title    string    `yaml:"title,omitempty"`
	Sections []Section `yaml:"sections"`
}

// Section describes one collapsible panel.
type Section struct {
	Title    string `yaml:"title"`
	Body     string `yaml:"body,omitempty"`
	Expanded bool   `yaml:"expanded,omitempty"`
}

// DefaultManifest returns the built-in section set used when no manifest
// file is configured.
func DefaultManifest() *Manifest {
	return &Manifest{
		Title: "Accordeon Demo",
		Sections: []Section{
			{
				Title:    "Getting started",
				Body:     "Tap a section header to open it. Opening one section closes the others, like a radio group.",
				Expanded: true,
			},
			{
				Title: "Exclusive by default",
				Body:  "The Accordeon keeps at most one section open by reacting to each panel's activation notification.",
			},
			{
				Title: "Escape hatches",
				Body:  "Expand All deliberately breaks the single-open rule; the next header tap restores it.",
			},
			{
				Title: "Bring your own widgets",
				Body:  "Anything that reports, sets and announces its expanded state can join the group.",
			},
		},
	}
}

// LoadManifest reads a YAML section manifest from path. An empty path or a
// missing file falls back to DefaultManifest; a malformed file is an error.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return DefaultManifest(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultManifest(), nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if m.Title == "" {
		m.Title = DefaultManifest().Title
	}

	return &m, nil
}
