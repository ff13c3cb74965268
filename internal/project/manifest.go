// Package project reads the minim.toml project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up when resolving a project root.
const ManifestName = "minim.toml"

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing or blank.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// Manifest is the decoded minim.toml.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Check   CheckSection   `toml:"check"`
}

// PackageSection names the project and its source files.
type PackageSection struct {
	Name    string   `toml:"name"`
	Sources []string `toml:"sources"`
}

// CheckSection tunes diagnostics collection. Zero values mean "use the
// built-in default"; CLI flags override both.
type CheckSection struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Jobs           int  `toml:"jobs"`
	NoCache        bool `toml:"no_cache"`
}

// Load parses a minim.toml manifest.
func Load(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if strings.TrimSpace(m.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	return m, nil
}

// FindManifest walks up from startDir to locate minim.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
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

// SourcePaths expands the manifest's source list relative to the manifest
// directory. An empty list means every .minim file in that directory.
func (m Manifest) SourcePaths(manifestPath string) ([]string, error) {
	base := filepath.Dir(manifestPath)
	if len(m.Package.Sources) == 0 {
		matches, err := filepath.Glob(filepath.Join(base, "*.minim"))
		if err != nil {
			return nil, fmt.Errorf("globbing sources: %w", err)
		}
		return matches, nil
	}
	paths := make([]string, 0, len(m.Package.Sources))
	for _, src := range m.Package.Sources {
		if filepath.IsAbs(src) {
			paths = append(paths, src)
			continue
		}
		paths = append(paths, filepath.Join(base, src))
	}
	return paths, nil
}
