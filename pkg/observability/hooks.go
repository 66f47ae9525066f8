// Package observability provides hooks for instrumenting the render pipeline.
//
// Hooks let the CLI (or any embedding program) observe pipeline stages
// without the pipeline depending on a logging or metrics backend. The
// default hooks do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks as each stage finishes:
//
//	observability.Pipeline().OnLoadComplete(ctx, path, rows, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the render pipeline.
type PipelineHooks interface {
	// OnLoadComplete fires after the layout file was read (or failed to be).
	OnLoadComplete(ctx context.Context, path string, rows int, duration time.Duration, err error)

	// OnPartition fires after the grid was split into blocks.
	OnPartition(ctx context.Context, shape string, blocks int)

	// OnFontFallback fires when the preferred font could not be used.
	OnFontFallback(ctx context.Context, name string, err error)

	// OnRenderComplete fires after the canvas was drawn.
	OnRenderComplete(ctx context.Context, mode string, width, height int, duration time.Duration)

	// OnExportComplete fires after the image was written (or failed to be).
	OnExportComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnPartition(context.Context, string, int)                         {}
func (NoopPipelineHooks) OnFontFallback(context.Context, string, error)                    {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, int, time.Duration) {
}
func (NoopPipelineHooks) OnExportComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
