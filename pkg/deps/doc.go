// Package deps defines the resolved dependency graph that cargo-brief reads.
//
// # Overview
//
// A [Snapshot] is produced once per run by a [Provider] and is read-only
// afterwards. It holds:
//
//   - Packages: every known [Package], keyed by its opaque ID
//   - Edges: the outgoing [Dependency] list of each resolved node, in the
//     order the provider reported them
//   - WorkspaceMembers: the IDs of the packages that make up the workspace
//   - Root: the package the manifest path points at, if any
//
// Virtual workspaces (a manifest with a [workspace] table but no [package])
// have no root; callers fall back to enumerating every member.
//
// # Providers
//
// The Cargo implementation lives in [rust]. Tests and other callers can
// supply synthetic graphs through [ProviderFunc]:
//
//	p := deps.ProviderFunc(func(ctx context.Context, path string) (*deps.Snapshot, error) {
//	    return snap, nil
//	})
//
// # Dependency Kinds
//
// Each edge carries one [DepKind] per platform-specific entry. An edge is
// dev-only when every entry is [DepDev]; see [Dependency.DevOnly].
//
// [rust]: github.com/matzehuels/cargo-brief/pkg/deps/rust
package deps
