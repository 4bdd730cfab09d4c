// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about gestures, registry changes, and API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Gesture and registry hooks are called synchronously from the engine and
// carry no context: engine operations never block. Hooks must return quickly
// because they run on every pointer move.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    observability.SetRegistryHooks(&myRegistryHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Gesture().OnGestureStart("drag", itemID)
//	// ... pointer moves ...
//	observability.Gesture().OnGestureEnd("drag", itemID, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from drag and resize gestures.
type GestureHooks interface {
	// OnGestureStart records the Idle→Active transition of an item.
	OnGestureStart(kind, item string)

	// OnGestureEnd records the Active→Idle transition and the gesture duration.
	OnGestureEnd(kind, item string, duration time.Duration)

	// OnSnap records a non-zero corrective snap offset.
	OnSnap(kind, item string, dx, dy float64)

	// OnIgnored records an operation on an item that is not registered.
	OnIgnored(op, item string)
}

// =============================================================================
// Registry Hooks
// =============================================================================

// RegistryHooks receives events from the item registry.
type RegistryHooks interface {
	// OnRegister records an item joining a container.
	OnRegister(container, item string)

	// OnUnregister records an item leaving a container.
	OnUnregister(container, item string)

	// OnActivate records an item being raised to the top of its container.
	OnActivate(container, item string, priority int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(string, string)              {}
func (NoopGestureHooks) OnGestureEnd(string, string, time.Duration) {}
func (NoopGestureHooks) OnSnap(string, string, float64, float64)    {}
func (NoopGestureHooks) OnIgnored(string, string)                   {}

// NoopRegistryHooks is a no-op implementation of RegistryHooks.
type NoopRegistryHooks struct{}

func (NoopRegistryHooks) OnRegister(string, string)      {}
func (NoopRegistryHooks) OnUnregister(string, string)    {}
func (NoopRegistryHooks) OnActivate(string, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gestureHooks  GestureHooks  = NoopGestureHooks{}
	registryHooks RegistryHooks = NoopRegistryHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetGestureHooks registers custom gesture hooks.
// This should be called once at application startup before any gestures run.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetRegistryHooks registers custom registry hooks.
// This should be called once at application startup before any items register.
func SetRegistryHooks(h RegistryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		registryHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Registry returns the registered registry hooks.
func Registry() RegistryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return registryHooks
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
	gestureHooks = NoopGestureHooks{}
	registryHooks = NoopRegistryHooks{}
	httpHooks = NoopHTTPHooks{}
}
