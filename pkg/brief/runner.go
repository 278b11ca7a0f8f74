package brief

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cargo-brief/pkg/deps"
	"github.com/matzehuels/cargo-brief/pkg/errors"
	"github.com/matzehuels/cargo-brief/pkg/observability"
	"github.com/matzehuels/cargo-brief/pkg/wildcard"
)

// Defaults applied by [Options.SetDefaults].
const (
	DefaultPattern      = wildcard.MatchAll
	DefaultManifestPath = "./Cargo.toml"
)

// Options configures a single run.
type Options struct {
	Pattern      string // Name pattern; "*" lists every direct dependency
	ManifestPath string // Handed to the provider unchanged
	NoDev        bool   // Drop dev-only edges
	Recursive    bool   // List every workspace member instead of the root
}

// SetDefaults fills empty fields.
func (o *Options) SetDefaults() {
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	if o.ManifestPath == "" {
		o.ManifestPath = DefaultManifestPath
	}
}

// Validate checks the options after defaults are applied.
func (o *Options) Validate() error {
	if err := errors.ValidatePattern(o.Pattern); err != nil {
		return err
	}
	return errors.ValidateManifestPath(o.ManifestPath)
}

// ScopeResult holds the matches of one workspace scope.
type ScopeResult struct {
	Root     string
	Packages []*deps.Package
}

// Result summarizes a run. Only scopes with at least one match are listed.
type Result struct {
	Recursive bool
	Scopes    []ScopeResult
	Total     int
}

// Runner loads a snapshot, selects matches per scope and writes them out.
// It keeps no state between runs.
type Runner struct {
	Provider deps.Provider
	Renderer *Renderer
	Out      io.Writer
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil renderer renders plain text; a nil
// logger uses log.Default().
func NewRunner(p deps.Provider, r *Renderer, out io.Writer, logger *log.Logger) *Runner {
	if r == nil {
		r = PlainRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Provider: p, Renderer: r, Out: out, Logger: logger}
}

// Run executes the whole command.
//
// Without Recursive the provider's root is the only scope; with Recursive,
// or when the project has no root, every workspace member is a scope. In
// that mode each non-empty scope gets a "# <id>" header and a trailing
// blank line and is always rendered as a table. Otherwise a lone match is
// shown in detail.
//
// Scopes with no match print nothing. If no scope matched and the pattern
// is not the default "*", Run fails with PACKAGE_NOT_FOUND after every
// scope has been tried.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := r.run(ctx, opts)
	total := 0
	if res != nil {
		total = res.Total
	}
	observability.Brief().OnRunComplete(ctx, opts.Pattern, total, time.Since(start), err)
	return res, err
}

func (r *Runner) run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	snap, err := r.Provider.Resolve(ctx, opts.ManifestPath)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeMetadata, err, "Unable to read cargo metadata")
	}
	r.Logger.Debug("snapshot loaded", "path", opts.ManifestPath, "duration", time.Since(start).Round(time.Millisecond))

	res := &Result{Recursive: opts.Recursive || !snap.HasRoot()}
	scopes := []string{snap.Root}
	if res.Recursive {
		scopes = snap.WorkspaceMembers
	}

	for _, scope := range scopes {
		pkgs, err := Select(snap, scope, opts.Pattern, opts.NoDev)
		if err != nil {
			return res, err
		}
		observability.Brief().OnScopeSelected(ctx, scope, opts.Pattern, len(pkgs))
		if len(pkgs) == 0 {
			r.Logger.Debug("no matches", "scope", scope, "pattern", opts.Pattern)
			continue
		}

		body, err := r.renderScope(scope, pkgs, res.Recursive)
		if err != nil {
			return res, err
		}
		if _, err := r.Out.Write(body); err != nil {
			return res, errors.Wrap(errors.ErrCodeOutput, err, "write output")
		}

		res.Scopes = append(res.Scopes, ScopeResult{Root: scope, Packages: pkgs})
		res.Total += len(pkgs)
	}

	if res.Total == 0 && !wildcard.IsMatchAll(opts.Pattern) {
		return res, errors.New(errors.ErrCodePackageNotFound, "Package %s not found", opts.Pattern)
	}
	return res, nil
}

func (r *Runner) renderScope(scope string, pkgs []*deps.Package, recursive bool) ([]byte, error) {
	var buf bytes.Buffer
	if recursive {
		fmt.Fprintf(&buf, "# %s\n\n", scope)
	}

	var (
		text string
		err  error
	)
	if recursive || len(pkgs) > 1 {
		text, err = r.Renderer.Table(pkgs)
	} else {
		text, err = r.Renderer.Detail(pkgs[0])
	}
	if err != nil {
		return nil, err
	}
	buf.WriteString(text)

	if recursive {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
