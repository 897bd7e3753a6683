// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about calculation runs and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the calculation core free of observability
// framework dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCalcHooks(&myCalcHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Calc().OnCalculateStart(ctx, modelKey)
//	// ... calculate ...
//	observability.Calc().OnCalculateComplete(ctx, modelKey, errCount, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Calculation Hooks
// =============================================================================

// CalcHooks receives events from the calculation pipeline.
type CalcHooks interface {
	// Normalization events
	OnNormalizeStart(ctx context.Context, modelKey string)
	OnNormalizeComplete(ctx context.Context, modelKey string, duration time.Duration)

	// Calculation events
	OnCalculateStart(ctx context.Context, modelKey string)
	OnCalculateComplete(ctx context.Context, modelKey string, errorCount int, duration time.Duration)

	// Validation events
	OnValidateComplete(ctx context.Context, modelKey string, errors, warnings int)
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
// No-op Implementations
// =============================================================================

// NoopCalcHooks is a no-op implementation of CalcHooks.
type NoopCalcHooks struct{}

func (NoopCalcHooks) OnNormalizeStart(context.Context, string)                        {}
func (NoopCalcHooks) OnNormalizeComplete(context.Context, string, time.Duration)      {}
func (NoopCalcHooks) OnCalculateStart(context.Context, string)                        {}
func (NoopCalcHooks) OnCalculateComplete(context.Context, string, int, time.Duration) {}
func (NoopCalcHooks) OnValidateComplete(context.Context, string, int, int)            {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	calcHooks  CalcHooks  = NoopCalcHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetCalcHooks registers custom calculation hooks.
// This should be called once at application startup before any runs.
func SetCalcHooks(h CalcHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		calcHooks = h
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

// Calc returns the registered calculation hooks.
func Calc() CalcHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return calcHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	calcHooks = NoopCalcHooks{}
	cacheHooks = NoopCacheHooks{}
}
