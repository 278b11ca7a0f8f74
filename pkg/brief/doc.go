// Package brief selects and prints the direct dependencies of a Cargo
// project.
//
// # Pipeline
//
// A [Runner] performs one pass:
//
//  1. Load a [deps.Snapshot] from its [deps.Provider]
//  2. Pick the scopes: the default root, or every workspace member
//  3. [Select] the matching dependencies of each scope
//  4. Render them with [Renderer.Table] or [Renderer.Detail]
//
// # Output
//
// The table has one `name  version  summary` row per package, where the
// summary is the first line of the description (see [Summary]). The detail
// listing has nine `label : value` rows:
//
//	name        : serde
//	descrip.    : A generic serialization/deserialization framework
//	keywords    : serde, serialization, no_std
//	categories  : encoding, no-std
//	version     : 1.0.203
//	license     : MIT OR Apache-2.0
//	homepage    : https://serde.rs
//	repository  : https://github.com/serde-rs/serde
//	features    : alloc, default, derive, rc, std
//
// Column widths are not stable across inputs; only alignment is.
//
// [deps.Snapshot]: github.com/matzehuels/cargo-brief/pkg/deps.Snapshot
// [deps.Provider]: github.com/matzehuels/cargo-brief/pkg/deps.Provider
package brief
