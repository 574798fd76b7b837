// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout computation, selection changes, anchor moves,
// cache operations, and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the layout and
// selection packages stay free of any metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetSelectionHooks(&mySelectionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnStackStart(ctx, "annotation", len(ranges))
//	rows := rows.Stack(ranges, n)
//	observability.Layout().OnStackComplete(ctx, "annotation", len(rows), time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from row stacking and the layout pipeline.
type LayoutHooks interface {
	// Stacking events, one pair per feature kind.
	OnStackStart(ctx context.Context, kind string, rangeCount int)
	OnStackComplete(ctx context.Context, kind string, rowCount int, duration time.Duration)

	// Whole-layout events.
	OnLayoutStart(ctx context.Context, seqLength int)
	OnLayoutComplete(ctx context.Context, seqLength, blockCount int, duration time.Duration, err error)
}

// =============================================================================
// Selection Hooks
// =============================================================================

// SelectionHooks receives events from the selection engine.
type SelectionHooks interface {
	// OnSelectionChange records an accepted selection change.
	OnSelectionChange(ctx context.Context, start, end int, clockwise bool, ref string, length int)

	// OnEventDropped records an input event that could not be resolved
	// to a base (pointer over decorative chrome, empty sequence).
	OnEventDropped(ctx context.Context, event, reason string)
}

// =============================================================================
// Anchor Hooks
// =============================================================================

// AnchorHooks receives central index changes.
type AnchorHooks interface {
	// OnAnchorChange records an accepted anchor move for a view.
	OnAnchorChange(ctx context.Context, view string, index int)
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

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a request that failed inside a handler.
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnStackStart(context.Context, string, int)                       {}
func (NoopLayoutHooks) OnStackComplete(context.Context, string, int, time.Duration)      {}
func (NoopLayoutHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopLayoutHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error) {}

// NoopSelectionHooks is a no-op implementation of SelectionHooks.
type NoopSelectionHooks struct{}

func (NoopSelectionHooks) OnSelectionChange(context.Context, int, int, bool, string, int) {}
func (NoopSelectionHooks) OnEventDropped(context.Context, string, string)                 {}

// NoopAnchorHooks is a no-op implementation of AnchorHooks.
type NoopAnchorHooks struct{}

func (NoopAnchorHooks) OnAnchorChange(context.Context, string, int) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks    LayoutHooks    = NoopLayoutHooks{}
	selectionHooks SelectionHooks = NoopSelectionHooks{}
	anchorHooks    AnchorHooks    = NoopAnchorHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	httpHooks      HTTPHooks      = NoopHTTPHooks{}
	hooksMu        sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetSelectionHooks registers custom selection hooks.
func SetSelectionHooks(h SelectionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		selectionHooks = h
	}
}

// SetAnchorHooks registers custom anchor hooks.
func SetAnchorHooks(h AnchorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		anchorHooks = h
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

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Selection returns the registered selection hooks.
func Selection() SelectionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return selectionHooks
}

// Anchor returns the registered anchor hooks.
func Anchor() AnchorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return anchorHooks
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
	layoutHooks = NoopLayoutHooks{}
	selectionHooks = NoopSelectionHooks{}
	anchorHooks = NoopAnchorHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
