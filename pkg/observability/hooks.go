// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and backend-neutral: consumers register hooks
// at startup and receive events about metadata loading and brief runs.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetMetadataHooks(&myMetadataHooks{})
//	    observability.SetBriefHooks(&myBriefHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Metadata().OnLoadStart(ctx, manifestPath)
//	// ... run cargo metadata ...
//	observability.Metadata().OnLoadComplete(ctx, manifestPath, packageCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Metadata Hooks
// =============================================================================

// MetadataHooks receives events from dependency graph providers.
type MetadataHooks interface {
	// OnLoadStart records the start of a provider call.
	OnLoadStart(ctx context.Context, manifestPath string)

	// OnLoadComplete records the end of a provider call. packages is zero
	// when err is non-nil.
	OnLoadComplete(ctx context.Context, manifestPath string, packages int, duration time.Duration, err error)
}

// =============================================================================
// Brief Hooks
// =============================================================================

// BriefHooks receives events from the selection and rendering pipeline.
type BriefHooks interface {
	// OnScopeSelected records how many direct dependencies of scope matched.
	OnScopeSelected(ctx context.Context, scope, pattern string, matches int)

	// OnRunComplete records the end of a run with the total match count.
	OnRunComplete(ctx context.Context, pattern string, total int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopMetadataHooks is a no-op implementation of MetadataHooks.
type NoopMetadataHooks struct{}

func (NoopMetadataHooks) OnLoadStart(context.Context, string)                               {}
func (NoopMetadataHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}

// NoopBriefHooks is a no-op implementation of BriefHooks.
type NoopBriefHooks struct{}

func (NoopBriefHooks) OnScopeSelected(context.Context, string, string, int)             {}
func (NoopBriefHooks) OnRunComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	metadataHooks MetadataHooks = NoopMetadataHooks{}
	briefHooks    BriefHooks    = NoopBriefHooks{}
	hooksMu       sync.RWMutex
)

// SetMetadataHooks registers custom metadata hooks.
// This should be called once at application startup before any provider runs.
func SetMetadataHooks(h MetadataHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		metadataHooks = h
	}
}

// SetBriefHooks registers custom brief hooks.
func SetBriefHooks(h BriefHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		briefHooks = h
	}
}

// Metadata returns the registered metadata hooks.
func Metadata() MetadataHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return metadataHooks
}

// Brief returns the registered brief hooks.
func Brief() BriefHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return briefHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	metadataHooks = NoopMetadataHooks{}
	briefHooks = NoopBriefHooks{}
}
