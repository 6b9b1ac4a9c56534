// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about board intents, exports, cache operations and preview
// requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so there are no import
// cycles and no backend is baked into the core packages.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBoardHooks(&myBoardHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Board().OnEvent(ctx, "grid", "place", true, "", elapsed)
//	observability.Export().OnRenderComplete(ctx, []string{"pdf"}, pages, elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Board Hooks
// =============================================================================

// BoardHooks receives events from the board event handlers.
type BoardHooks interface {
	// OnEvent records one handled intent. reason is empty when applied.
	OnEvent(ctx context.Context, variant, event string, applied bool, reason string, duration time.Duration)

	// OnReplay records a replayed event log.
	OnReplay(ctx context.Context, variant string, events, rejected int, duration time.Duration)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from layout export.
type ExportHooks interface {
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, pages int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the preview server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBoardHooks is a no-op implementation of BoardHooks.
type NoopBoardHooks struct{}

func (NoopBoardHooks) OnEvent(context.Context, string, string, bool, string, time.Duration) {}
func (NoopBoardHooks) OnReplay(context.Context, string, int, int, time.Duration)            {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnRenderStart(context.Context, []string) {}
func (NoopExportHooks) OnRenderComplete(context.Context, []string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	boardHooks  BoardHooks  = NoopBoardHooks{}
	exportHooks ExportHooks = NoopExportHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetBoardHooks registers custom board hooks.
// This should be called once at application startup before any events are handled.
func SetBoardHooks(h BoardHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		boardHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Board returns the registered board hooks.
func Board() BoardHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return boardHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	boardHooks = NoopBoardHooks{}
	exportHooks = NoopExportHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
