package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"sancorpus/config"
)

func TestDefault(t *testing.T) {
	m := config.Default()
	if m.PlainPath() != "san_strings.txt" {
		t.Errorf("PlainPath = %q", m.PlainPath())
	}
	if m.AnnotatedPath() != "san_strings_with_symbols.txt" {
		t.Errorf("AnnotatedPath = %q", m.AnnotatedPath())
	}
	if m.Output.SkipAnnotated {
		t.Error("SkipAnnotated should default to false")
	}
}

func TestLoadMissingManifest(t *testing.T) {
	dir := t.TempDir()
	m, found, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Fatal("found a manifest in an empty temp dir")
	}
	if m != config.Default() {
		t.Errorf("missing manifest should yield defaults, got %+v", m)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	manifest := `[output]
dir = "out"
plain = "corpus.txt"
`
	if err := os.WriteFile(filepath.Join(root, config.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, found, err := config.Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("manifest not found from nested dir")
	}
	if m.PlainPath() != filepath.Join("out", "corpus.txt") {
		t.Errorf("PlainPath = %q", m.PlainPath())
	}
	// Unset keys keep their defaults.
	if m.Output.Annotated != "san_strings_with_symbols.txt" {
		t.Errorf("Annotated = %q", m.Output.Annotated)
	}
}

func TestLoadRejectsEmptyNames(t *testing.T) {
	dir := t.TempDir()
	manifest := `[output]
plain = ""
`
	if err := os.WriteFile(filepath.Join(dir, config.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := config.Load(dir); err == nil {
		t.Fatal("expected an error for an empty plain file name")
	}
}
