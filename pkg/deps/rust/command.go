package rust

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// MetadataCommand describes one `cargo metadata` invocation.
type MetadataCommand struct {
	Cargo        string   // Cargo binary; falls back to $CARGO, then "cargo"
	ManifestPath string   // Passed through unchanged as --manifest-path
	Dir          string   // Working directory (optional)
	Env          []string // Extra KEY=VALUE pairs appended to the environment
	ExtraArgs    []string // Extra arguments after the standard ones
}

// CargoPath returns the cargo binary that Exec will run.
// Cargo exports $CARGO to the subcommands it launches, so a `cargo brief`
// run uses the same toolchain as its parent.
func (c *MetadataCommand) CargoPath() string {
	if c.Cargo != "" {
		return c.Cargo
	}
	if env := os.Getenv("CARGO"); env != "" {
		return env
	}
	return "cargo"
}

// Args returns the argument list, not including the binary.
func (c *MetadataCommand) Args() []string {
	args := []string{"metadata", "--format-version", "1"}
	if c.ManifestPath != "" {
		args = append(args, "--manifest-path", c.ManifestPath)
	}
	return append(args, c.ExtraArgs...)
}

// CargoError reports a non-zero exit from cargo together with its stderr.
type CargoError struct {
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *CargoError) Error() string {
	return "`cargo metadata` exited with an error: " + e.Stderr
}

// Exec runs cargo and decodes its output. It blocks until cargo exits or
// ctx is cancelled.
func (c *MetadataCommand) Exec(ctx context.Context) (*Metadata, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.CargoPath(), c.Args()...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CargoError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("run %s: %w", c.CargoPath(), err)
	}

	return ParseMetadata(stdout.Bytes())
}
