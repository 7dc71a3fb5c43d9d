// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries call the registered hooks to report what they are doing; the
// application decides what to do with the events. Defaults are no-ops, so
// library code never needs to check whether anything is registered.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHTTPHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries emit events:
//
//	observability.Gallery().OnResolveStart(ctx, artist)
//	// ... resolve ...
//	observability.Gallery().OnResolveComplete(ctx, artist, matches, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Gallery Hooks
// =============================================================================

// GalleryHooks receives events from artist resolution and catalog loading.
type GalleryHooks interface {
	OnResolveStart(ctx context.Context, artist string)
	OnResolveComplete(ctx context.Context, artist string, matches int, duration time.Duration, err error)

	OnCatalogLoadStart(ctx context.Context)
	OnCatalogLoadComplete(ctx context.Context, artists int, duration time.Duration, err error)
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

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGalleryHooks is a no-op implementation of GalleryHooks.
type NoopGalleryHooks struct{}

func (NoopGalleryHooks) OnResolveStart(context.Context, string)                                {}
func (NoopGalleryHooks) OnResolveComplete(context.Context, string, int, time.Duration, error) {}
func (NoopGalleryHooks) OnCatalogLoadStart(context.Context)                                    {}
func (NoopGalleryHooks) OnCatalogLoadComplete(context.Context, int, time.Duration, error)      {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	galleryHooks GalleryHooks = NoopGalleryHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetGalleryHooks registers custom gallery hooks.
// This should be called once at application startup.
func SetGalleryHooks(h GalleryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		galleryHooks = h
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
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Gallery returns the registered gallery hooks.
func Gallery() GalleryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return galleryHooks
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
	galleryHooks = NoopGalleryHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
