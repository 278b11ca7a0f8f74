package rust

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargo-brief/pkg/deps"
	"github.com/matzehuels/cargo-brief/pkg/observability"
)

// Provider implements [deps.Provider] by running `cargo metadata`.
type Provider struct {
	Cargo  string      // Cargo binary override; see [MetadataCommand.CargoPath]
	Env    []string    // Extra environment for the cargo process
	Logger *log.Logger // Debug diagnostics; never nil after NewProvider
}

// NewProvider creates a cargo-backed provider. An empty cargo uses $CARGO or
// the cargo found on $PATH. If logger is nil, log.Default() is used.
func NewProvider(cargo string, logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.Default()
	}
	return &Provider{Cargo: cargo, Logger: logger}
}

// Resolve runs cargo once for manifestPath and converts its output. Cargo's
// error text is returned unchanged; there is no retry.
func (p *Provider) Resolve(ctx context.Context, manifestPath string) (*deps.Snapshot, error) {
	hooks := observability.Metadata()
	hooks.OnLoadStart(ctx, manifestPath)
	start := time.Now()

	snap, err := p.resolve(ctx, manifestPath)
	if err != nil {
		hooks.OnLoadComplete(ctx, manifestPath, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, manifestPath, len(snap.Packages), time.Since(start), nil)
	return snap, nil
}

func (p *Provider) resolve(ctx context.Context, manifestPath string) (*deps.Snapshot, error) {
	manifest := p.probe(manifestPath)

	cmd := &MetadataCommand{Cargo: p.Cargo, ManifestPath: manifestPath, Env: p.Env}
	p.Logger.Debug("running cargo", "bin", cmd.CargoPath(), "args", strings.Join(cmd.Args(), " "))

	start := time.Now()
	meta, err := cmd.Exec(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := meta.Snapshot()
	if err != nil {
		return nil, err
	}

	p.Logger.Debug("loaded cargo metadata",
		"packages", len(snap.Packages),
		"members", len(snap.WorkspaceMembers),
		"root", snap.Root,
		"duration", time.Since(start).Round(time.Millisecond))
	p.crossCheck(manifest, snap)
	return snap, nil
}

// probe reads the manifest directly so that debug output can say what the
// project declares before cargo resolves it. Failures are only logged; cargo
// reports the authoritative error.
func (p *Provider) probe(manifestPath string) *Manifest {
	if !IsManifestName(manifestPath) {
		p.Logger.Debug("manifest path does not name a Cargo.toml", "path", manifestPath)
	}
	m, err := ReadManifest(manifestPath)
	if err != nil {
		p.Logger.Debug("manifest probe failed", "err", err)
		return nil
	}
	if m.Virtual() {
		p.Logger.Debug("virtual workspace manifest", "path", m.Path, "members", strings.Join(m.WorkspaceMembers, ","))
		return m
	}
	p.Logger.Debug("manifest", "package", m.PackageName, "version", m.Version, "direct", m.DirectCount())
	return m
}

// crossCheck compares the probed manifest with cargo's view of the project.
// A virtual manifest should yield no root, and a package manifest should
// yield a root of the same name. Cargo's answer is kept either way.
func (p *Provider) crossCheck(m *Manifest, snap *deps.Snapshot) {
	if m == nil {
		return
	}
	switch {
	case m.Virtual() && snap.HasRoot():
		p.Logger.Debug("manifest is a virtual workspace but cargo reported a root", "root", snap.Root)
	case !m.Virtual() && !snap.HasRoot():
		p.Logger.Debug("manifest declares a package but cargo reported no root", "package", m.PackageName)
	case !m.Virtual():
		if root, ok := snap.Package(snap.Root); ok && root.Name != m.PackageName {
			p.Logger.Debug("cargo root differs from manifest package", "manifest", m.PackageName, "root", root.Name)
		}
	}
}
