// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drawing edits and document save/load.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDocumentHooks(&myDocumentHooks{})
//	    observability.SetOutlineHooks(&myOutlineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Document().OnLoadStart(ctx, len(doc.Bases), len(doc.Outlines))
//	// ... restore outlines ...
//	observability.Document().OnLoadComplete(ctx, restored, skipped, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Document Hooks
// =============================================================================

// DocumentHooks receives events from saving and loading drawing documents.
type DocumentHooks interface {
	// Save events
	OnSaveComplete(ctx context.Context, bases, outlines int, duration time.Duration, err error)

	// Load events
	OnLoadStart(ctx context.Context, bases, outlines int)
	OnOutlineRestored(ctx context.Context, id string)
	OnOutlineSkipped(ctx context.Context, index int, err error)
	OnLoadComplete(ctx context.Context, restored, skipped int, duration time.Duration, err error)
}

// =============================================================================
// Outline Hooks
// =============================================================================

// OutlineHooks receives events from editing outlines in a drawing. Edits are
// synchronous and carry no context.
type OutlineHooks interface {
	// OnOutlineCreated records a new outline bound to ownerID.
	OnOutlineCreated(id, ownerID string)

	// OnOutlineRemoved records an outline taken out of a drawing.
	OnOutlineRemoved(id string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDocumentHooks is a no-op implementation of DocumentHooks.
type NoopDocumentHooks struct{}

func (NoopDocumentHooks) OnSaveComplete(context.Context, int, int, time.Duration, error) {}
func (NoopDocumentHooks) OnLoadStart(context.Context, int, int)                          {}
func (NoopDocumentHooks) OnOutlineRestored(context.Context, string)                      {}
func (NoopDocumentHooks) OnOutlineSkipped(context.Context, int, error)                   {}
func (NoopDocumentHooks) OnLoadComplete(context.Context, int, int, time.Duration, error) {}

// NoopOutlineHooks is a no-op implementation of OutlineHooks.
type NoopOutlineHooks struct{}

func (NoopOutlineHooks) OnOutlineCreated(string, string) {}
func (NoopOutlineHooks) OnOutlineRemoved(string)         {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	documentHooks DocumentHooks = NoopDocumentHooks{}
	outlineHooks  OutlineHooks  = NoopOutlineHooks{}
	hooksMu       sync.RWMutex
)

// SetDocumentHooks registers custom document hooks.
// This should be called once at application startup before any save or load.
func SetDocumentHooks(h DocumentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		documentHooks = h
	}
}

// SetOutlineHooks registers custom outline hooks.
// This should be called once at application startup before any drawing edits.
func SetOutlineHooks(h OutlineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outlineHooks = h
	}
}

// Document returns the registered document hooks.
func Document() DocumentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return documentHooks
}

// Outline returns the registered outline hooks.
func Outline() OutlineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outlineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	documentHooks = NoopDocumentHooks{}
	outlineHooks = NoopOutlineHooks{}
}
