// Package config loads the optional sancorpus.toml manifest that
// controls where corpus artifacts are written.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up when loading project configuration.
const ManifestName = "sancorpus.toml"

// Output controls the generated artifact paths.
type Output struct {
	Dir           string `toml:"dir"`
	Plain         string `toml:"plain"`
	Annotated     string `toml:"annotated"`
	SkipAnnotated bool   `toml:"skip_annotated"`
}

// Manifest is the full sancorpus.toml schema.
type Manifest struct {
	Output Output `toml:"output"`
}

// Default returns the configuration used when no manifest is present.
func Default() Manifest {
	return Manifest{
		Output: Output{
			Dir:       ".",
			Plain:     "san_strings.txt",
			Annotated: "san_strings_with_symbols.txt",
		},
	}
}

// PlainPath is the resolved path of the plain corpus artifact.
func (m Manifest) PlainPath() string {
	return filepath.Join(m.Output.Dir, m.Output.Plain)
}

// AnnotatedPath is the resolved path of the annotated corpus artifact.
func (m Manifest) AnnotatedPath() string {
	return filepath.Join(m.Output.Dir, m.Output.Annotated)
}

// Load walks up from startDir looking for sancorpus.toml and parses the
// first one found. It reports found=false with the defaults when no
// manifest exists anywhere on the path to the filesystem root.
func Load(startDir string) (Manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return Default(), ok, err
	}
	m, err := parse(path)
	if err != nil {
		return Default(), true, err
	}
	return m, true, nil
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
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

func parse(path string) (Manifest, error) {
	m := Default()
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Default(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if m.Output.Plain == "" || m.Output.Annotated == "" {
		return Default(), fmt.Errorf("%s: output file names must not be empty", path)
	}
	return m, nil
}
