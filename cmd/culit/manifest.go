package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// culit.toml lets a project pin expansion settings next to its sources:
//
//	[package]
//	name = "demo"
//
//	[capabilities]
//	c_strings = true
//
//	[diagnostics]
//	max = 50
//
// Discovery walks up from the input's directory, like cargo does for its
// manifest. A missing manifest is not an error; defaults apply.

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package      packageConfig      `toml:"package"`
	Capabilities capabilitiesConfig `toml:"capabilities"`
	Diagnostics  diagnosticsConfig  `toml:"diagnostics"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type capabilitiesConfig struct {
	CStrings bool `toml:"c_strings"`
}

type diagnosticsConfig struct {
	Max int `toml:"max"`
}

func findCulitToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "culit.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findCulitToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
