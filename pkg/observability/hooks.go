// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about placement computations and measurement sessions.
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
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    observability.SetSessionHooks(&mySessionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Engine().OnComputeStart(requested)
//	// ... run the pipeline ...
//	observability.Engine().OnComputeComplete(requested, final, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from the placement engine.
//
// Placements are reported in their string form (e.g. "bottom-start") so this
// package stays a leaf with no dependency on the placement types.
type EngineHooks interface {
	// OnComputeStart records the start of a placement computation.
	OnComputeStart(requested string)

	// OnComputeComplete records a finished computation with the final
	// placement, which differs from requested when flip engaged.
	OnComputeComplete(requested, final string, duration time.Duration)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from measurement sessions.
type SessionHooks interface {
	// OnMeasure records a measurement update. kind is one of
	// "anchor", "floating", or "boundary".
	OnMeasure(sessionID, kind string)

	// OnStateChange records a session lifecycle transition.
	OnStateChange(sessionID, from, to string)

	// OnPublish records a result being published to subscribers.
	OnPublish(sessionID string, subscribers int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnComputeStart(string)                           {}
func (NoopEngineHooks) OnComputeComplete(string, string, time.Duration) {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnMeasure(string, string)             {}
func (NoopSessionHooks) OnStateChange(string, string, string) {}
func (NoopSessionHooks) OnPublish(string, int)                {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	engineHooks  EngineHooks  = NoopEngineHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	hooksMu      sync.RWMutex
)

// SetEngineHooks registers custom engine hooks.
// This should be called once at application startup before any computations.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
// This should be called once at application startup before creating sessions.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	engineHooks = NoopEngineHooks{}
	sessionHooks = NoopSessionHooks{}
}
