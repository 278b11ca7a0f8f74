package brief

import (
	"github.com/matzehuels/cargo-brief/pkg/deps"
	"github.com/matzehuels/cargo-brief/pkg/errors"
	"github.com/matzehuels/cargo-brief/pkg/wildcard"
)

// Select returns the direct dependencies of root whose names match pattern.
//
// Edges are visited in snapshot order and no sorting is applied, so the
// result order is whatever the provider reported. A root with no node in the
// graph yields an empty result. With noDev set, edges that apply only to
// development builds are dropped before matching.
//
// An edge whose target has no package record violates the snapshot
// invariants and is reported as an INTERNAL_ERROR.
func Select(snap *deps.Snapshot, root, pattern string, noDev bool) ([]*deps.Package, error) {
	edges, ok := snap.Dependencies(root)
	if !ok {
		return nil, nil
	}

	match := wildcard.Compile(pattern)
	var out []*deps.Package
	for _, e := range edges {
		if noDev && e.DevOnly() {
			continue
		}
		p, ok := snap.Package(e.PackageID)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "dependency %q of %q has no package entry", e.PackageID, root)
		}
		if match.Match(p.Name) {
			out = append(out, p)
		}
	}
	return out, nil
}
