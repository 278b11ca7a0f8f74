package rust

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargo-brief/pkg/errors"
)

// Manifest is what a Cargo.toml declares on its own, before cargo resolves
// anything. It is used for diagnostics only; the resolved graph always comes
// from cargo metadata.
type Manifest struct {
	Path              string
	PackageName       string
	Version           string
	Workspace         bool     // Has a [workspace] table
	WorkspaceMembers  []string // Member globs as written
	Dependencies      []string // Sorted names from [dependencies]
	DevDependencies   []string // Sorted names from [dev-dependencies]
	BuildDependencies []string // Sorted names from [build-dependencies]
}

// Virtual reports whether the manifest is a workspace root without a
// package of its own. Cargo reports no resolve root for such manifests.
func (m *Manifest) Virtual() bool { return m.Workspace && m.PackageName == "" }

// DirectCount returns the number of dependency entries across all tables.
func (m *Manifest) DirectCount() int {
	return len(m.Dependencies) + len(m.DevDependencies) + len(m.BuildDependencies)
}

// IsManifestName reports whether name looks like a Cargo manifest file name.
func IsManifestName(name string) bool { return strings.EqualFold(filepath.Base(name), "cargo.toml") }

// ReadManifest decodes the Cargo.toml at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read manifest %s", path)
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest %s", path)
	}

	m := &Manifest{
		Path:              path,
		PackageName:       cargo.Package.Name,
		Version:           versionString(cargo.Package.Version),
		Workspace:         cargo.Workspace != nil,
		Dependencies:      sortedKeys(cargo.Dependencies),
		DevDependencies:   sortedKeys(cargo.DevDependencies),
		BuildDependencies: sortedKeys(cargo.BuildDependencies),
	}
	if cargo.Workspace != nil {
		m.WorkspaceMembers = cargo.Workspace.Members
	}
	return m, nil
}

// versionString handles `version.workspace = true`, which decodes as a table.
func versionString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if t, ok := v.(map[string]any); ok && t["workspace"] == true {
		return "workspace"
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"`
	} `toml:"package"`
	Workspace *struct {
		Members []string `toml:"members"`
	} `toml:"workspace"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}
