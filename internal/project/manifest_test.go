package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"
sources = ["main.minim", "util.minim"]

[check]
max_diagnostics = 50
jobs = 4
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("name %q, want demo", m.Package.Name)
	}
	if diff := deep.Equal(m.Package.Sources, []string{"main.minim", "util.minim"}); diff != nil {
		t.Errorf("sources: %v", diff)
	}
	if m.Check.MaxDiagnostics != 50 || m.Check.Jobs != 4 {
		t.Errorf("check section %+v", m.Check)
	}
}

func TestLoadManifestMissingPackage(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check]\njobs = 1\n")
	if _, err := Load(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("err = %v, want ErrPackageSectionMissing", err)
	}
}

func TestLoadManifestBlankName(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[package]\nname = \"  \"\n")
	if _, err := Load(path); !errors.Is(err, ErrPackageNameMissing) {
		t.Fatalf("err = %v, want ErrPackageNameMissing", err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest = (%q, %v, %v)", path, ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want under %q", path, root)
	}
}

func TestSourcePathsDefaultsToGlob(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")
	for _, name := range []string{"one.minim", "two.minim", "ignored.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	paths, err := m.SourcePaths(path)
	if err != nil {
		t.Fatalf("SourcePaths: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths (%v), want the 2 .minim files", len(paths), paths)
	}
}
