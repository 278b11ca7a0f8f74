package rust

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/cargo-brief/pkg/deps"
	"github.com/matzehuels/cargo-brief/pkg/errors"
)

// Metadata is the subset of the `cargo metadata --format-version 1`
// document that cargo-brief reads.
type Metadata struct {
	Version          int       `json:"version"`
	Packages         []Package `json:"packages"`
	WorkspaceMembers []string  `json:"workspace_members"`
	Resolve          *Resolve  `json:"resolve"`
	WorkspaceRoot    string    `json:"workspace_root"`
	TargetDirectory  string    `json:"target_directory"`
}

// Package is one entry of the "packages" array. Optional fields decode to
// the empty string when cargo reports null.
type Package struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	Description  string       `json:"description"`
	Keywords     []string     `json:"keywords"`
	Categories   []string     `json:"categories"`
	License      string       `json:"license"`
	Homepage     string       `json:"homepage"`
	Repository   string       `json:"repository"`
	Features     FeatureNames `json:"features"`
	ManifestPath string       `json:"manifest_path"`
}

// Resolve is the dependency graph cargo computed for the workspace.
type Resolve struct {
	Nodes []Node `json:"nodes"`
	Root  string `json:"root"`
}

// Node is a resolved package and its outgoing edges.
type Node struct {
	ID           string    `json:"id"`
	Dependencies []string  `json:"dependencies"`
	Deps         []NodeDep `json:"deps"`
	Features     []string  `json:"features"`
}

// NodeDep is one outgoing edge of a [Node].
type NodeDep struct {
	Name     string        `json:"name"`
	Pkg      string        `json:"pkg"`
	DepKinds []DepKindInfo `json:"dep_kinds"`
}

// DepKindInfo is one platform-specific entry of a [NodeDep].
// Kind is empty for normal dependencies.
type DepKindInfo struct {
	Kind   string `json:"kind"`
	Target string `json:"target"`
}

// FeatureNames holds the keys of a package's "features" object in the order
// they appear in the document.
type FeatureNames []string

// UnmarshalJSON walks the object token by token so key order survives.
func (f *FeatureNames) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("features: expected object, got %v", tok)
	}

	names := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("features: expected key, got %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
		names = append(names, key)
	}
	*f = names
	return nil
}

// ParseMetadata decodes cargo's stdout. Build scripts and wrappers may print
// other lines, so the first line that starts with '{' is taken as the
// document.
func ParseMetadata(out []byte) (*Metadata, error) {
	doc := firstJSONLine(out)
	if doc == nil {
		return nil, fmt.Errorf("cargo metadata produced no JSON output")
	}
	var m Metadata
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("decode cargo metadata: %w", err)
	}
	return &m, nil
}

func firstJSONLine(out []byte) []byte {
	for len(out) > 0 {
		line, rest, _ := bytes.Cut(out, []byte{'\n'})
		if bytes.HasPrefix(line, []byte{'{'}) {
			return line
		}
		out = rest
	}
	return nil
}

// Snapshot converts the document into a [deps.Snapshot]. Every edge must
// point at a package listed in "packages"; anything else means cargo and
// this decoder disagree about the format and is reported as an internal
// error.
func (m *Metadata) Snapshot() (*deps.Snapshot, error) {
	if m.Resolve == nil {
		return nil, errors.New(errors.ErrCodeInternal, "cargo metadata returned no dependency resolution")
	}

	snap := &deps.Snapshot{
		Packages:         make(map[string]*deps.Package, len(m.Packages)),
		Edges:            make(map[string][]deps.Dependency, len(m.Resolve.Nodes)),
		WorkspaceMembers: append([]string(nil), m.WorkspaceMembers...),
		Root:             m.Resolve.Root,
	}

	for _, p := range m.Packages {
		snap.Packages[p.ID] = &deps.Package{
			ID:          p.ID,
			Name:        p.Name,
			Version:     p.Version,
			Description: p.Description,
			Keywords:    p.Keywords,
			Categories:  p.Categories,
			License:     p.License,
			Homepage:    p.Homepage,
			Repository:  p.Repository,
			Features:    []string(p.Features),
		}
	}

	for _, n := range m.Resolve.Nodes {
		edges := make([]deps.Dependency, 0, len(n.Deps))
		for _, d := range n.Deps {
			if _, ok := snap.Packages[d.Pkg]; !ok {
				return nil, errors.New(errors.ErrCodeInternal, "dependency %q of %q has no package entry", d.Pkg, n.ID)
			}
			edges = append(edges, deps.Dependency{
				Name:      d.Name,
				PackageID: d.Pkg,
				Kinds:     depKinds(d.DepKinds),
			})
		}
		snap.Edges[n.ID] = edges
	}

	return snap, nil
}

func depKinds(infos []DepKindInfo) []deps.DepKind {
	kinds := make([]deps.DepKind, 0, len(infos))
	for _, info := range infos {
		kinds = append(kinds, parseDepKind(info.Kind))
	}
	return kinds
}

func parseDepKind(s string) deps.DepKind {
	switch s {
	case "", "normal":
		return deps.DepNormal
	case "build":
		return deps.DepBuild
	case "dev":
		return deps.DepDev
	default:
		return deps.DepUnknown
	}
}
