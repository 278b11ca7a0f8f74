// Package rust reads resolved Cargo dependency graphs.
//
// # Overview
//
// [Provider] implements [deps.Provider] by invoking
//
//	cargo metadata --format-version 1 --manifest-path <path>
//
// once and decoding the JSON document it prints into a [deps.Snapshot].
// Cargo performs all resolution; this package never reads a lock file or
// contacts a registry.
//
//	p := rust.NewProvider("", logger)
//	snap, err := p.Resolve(ctx, "./Cargo.toml")
//
// # Cargo Binary
//
// The binary is chosen by [MetadataCommand.CargoPath]: an explicit path,
// then $CARGO (exported by cargo to the subcommands it launches), then
// "cargo" from $PATH.
//
// # Manifest Probe
//
// [ReadManifest] decodes Cargo.toml directly. The provider uses it only to
// log what the manifest declares (package, workspace members, direct
// dependency count) at debug level.
//
// [deps.Provider]: github.com/matzehuels/cargo-brief/pkg/deps.Provider
// [deps.Snapshot]: github.com/matzehuels/cargo-brief/pkg/deps.Snapshot
package rust
