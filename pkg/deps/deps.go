package deps

import "context"

// DepKind classifies the context in which a dependency edge applies.
type DepKind int

const (
	// DepUnknown is a kind the provider reported that this package does not model.
	DepUnknown DepKind = iota
	// DepNormal is a regular runtime dependency.
	DepNormal
	// DepBuild is a build-script dependency.
	DepBuild
	// DepDev is a development-only dependency (tests, examples, benches).
	DepDev
)

// String returns the lower-case kind name.
func (k DepKind) String() string {
	switch k {
	case DepNormal:
		return "normal"
	case DepBuild:
		return "build"
	case DepDev:
		return "dev"
	default:
		return "unknown"
	}
}

// Package holds the metadata of one resolved package.
// Optional string fields are empty when the provider omitted them.
type Package struct {
	ID          string   // Opaque provider identifier
	Name        string   // Package name
	Version     string   // Semver version string
	Description string   // Free-form, possibly multi-line
	Keywords    []string // In declaration order
	Categories  []string // In declaration order
	License     string   // SPDX expression
	Homepage    string   // Homepage URL
	Repository  string   // Source repository URL
	Features    []string // Feature names in provider order
}

// Dependency is an outgoing edge of a resolved package.
type Dependency struct {
	Name      string    // Name the dependency is known by in the parent
	PackageID string    // Target package ID
	Kinds     []DepKind // Contexts the edge applies to, one per target entry
}

// DevOnly reports whether the edge applies exclusively in development
// context. An edge present for both normal and dev builds is not dev-only,
// and neither is an edge whose kinds are unknown.
func (d Dependency) DevOnly() bool {
	if len(d.Kinds) == 0 {
		return false
	}
	for _, k := range d.Kinds {
		if k != DepDev {
			return false
		}
	}
	return true
}

// Snapshot is an immutable view of a fully-resolved dependency graph.
//
// The zero value is an empty graph. Snapshots are built once per run by a
// [Provider] and only read afterwards.
type Snapshot struct {
	Packages         map[string]*Package     // Package ID -> record
	Edges            map[string][]Dependency // Package ID -> outgoing edges, provider order
	WorkspaceMembers []string                // Member IDs, provider order
	Root             string                  // Default root ID, empty for virtual workspaces
}

// Package looks up a package record by ID.
func (s *Snapshot) Package(id string) (*Package, bool) {
	p, ok := s.Packages[id]
	return p, ok
}

// Dependencies returns the outgoing edges of id. The boolean is false when
// the graph has no node for id at all.
func (s *Snapshot) Dependencies(id string) ([]Dependency, bool) {
	d, ok := s.Edges[id]
	return d, ok
}

// HasRoot reports whether the provider identified a default root package.
func (s *Snapshot) HasRoot() bool { return s.Root != "" }

// Provider loads a dependency snapshot for a project manifest.
type Provider interface {
	// Resolve returns the resolved graph of the project at manifestPath.
	Resolve(ctx context.Context, manifestPath string) (*Snapshot, error)
}

// ProviderFunc adapts a function to the [Provider] interface.
type ProviderFunc func(ctx context.Context, manifestPath string) (*Snapshot, error)

// Resolve calls f(ctx, manifestPath).
func (f ProviderFunc) Resolve(ctx context.Context, manifestPath string) (*Snapshot, error) {
	return f(ctx, manifestPath)
}
