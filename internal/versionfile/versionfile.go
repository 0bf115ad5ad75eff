// Package versionfile extracts a project's declared version from common
// build manifests so the check can run without the version being passed
// explicitly.
package versionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Read extracts the declared project version from the manifest at path.
// The format is inferred from the file name:
//   - *.properties (e.g. gradle.properties): value of the "version" key
//   - *.toml (e.g. Cargo.toml, pyproject.toml): top-level "version", or
//     "version" under [package] or [project]
//   - *.json (e.g. package.json): top-level "version" field
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read version file: %w", err)
	}

	var version string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".properties":
		version, err = fromProperties(b)
	case ".toml":
		version, err = fromTOML(b)
	case ".json":
		version, err = fromJSON(b)
	default:
		return "", fmt.Errorf("unsupported version file %q (expected *.properties, *.toml, or *.json)", filepath.Base(path))
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return version, nil
}

func fromProperties(b []byte) (string, error) {
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if strings.TrimSpace(key) != "version" {
			continue
		}
		version := strings.TrimSpace(value)
		if version == "" {
			return "", errors.New("version property is empty")
		}
		return version, nil
	}
	return "", errors.New("no version property found")
}

type tomlManifest struct {
	Version string `toml:"version"`
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
	Project struct {
		Version string `toml:"version"`
	} `toml:"project"`
}

func fromTOML(b []byte) (string, error) {
	var m tomlManifest
	if err := toml.Unmarshal(b, &m); err != nil {
		return "", fmt.Errorf("unable to parse manifest: %w", err)
	}
	for _, version := range []string{m.Version, m.Package.Version, m.Project.Version} {
		if version != "" {
			return version, nil
		}
	}
	return "", errors.New("no version key found")
}

type jsonManifest struct {
	Version string `json:"version"`
}

func fromJSON(b []byte) (string, error) {
	var m jsonManifest
	if err := json.Unmarshal(b, &m); err != nil {
		return "", fmt.Errorf("unable to parse manifest: %w", err)
	}
	if m.Version == "" {
		return "", errors.New("no version field found")
	}
	return m.Version, nil
}
