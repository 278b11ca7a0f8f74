package brief

import (
	"github.com/matzehuels/cargo-brief/pkg/deps"
)

// edge describes one outgoing dependency in a test graph.
type edge struct {
	pkg   *deps.Package
	kinds []deps.DepKind
}

func normal(p *deps.Package) edge { return edge{p, []deps.DepKind{deps.DepNormal}} }
func dev(p *deps.Package) edge    { return edge{p, []deps.DepKind{deps.DepDev}} }

func pkg(name, version, desc string) *deps.Package {
	return &deps.Package{ID: name + " " + version, Name: name, Version: version, Description: desc}
}

// graph builds a snapshot from member -> edges. Members are listed in the
// given order; root may be empty for a virtual workspace.
type graph struct {
	snap *deps.Snapshot
}

func newGraph(root string) *graph {
	return &graph{snap: &deps.Snapshot{
		Packages: map[string]*deps.Package{},
		Edges:    map[string][]deps.Dependency{},
		Root:     root,
	}}
}

func (g *graph) member(id string, edges ...edge) *graph {
	g.snap.Packages[id] = &deps.Package{ID: id, Name: id, Version: "0.1.0"}
	g.snap.WorkspaceMembers = append(g.snap.WorkspaceMembers, id)
	out := []deps.Dependency{}
	for _, e := range edges {
		g.snap.Packages[e.pkg.ID] = e.pkg
		if _, ok := g.snap.Edges[e.pkg.ID]; !ok {
			g.snap.Edges[e.pkg.ID] = []deps.Dependency{}
		}
		out = append(out, deps.Dependency{Name: e.pkg.Name, PackageID: e.pkg.ID, Kinds: e.kinds})
	}
	g.snap.Edges[id] = out
	return g
}

func names(pkgs []*deps.Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.Name)
	}
	return out
}
