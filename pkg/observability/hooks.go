// Package observability provides hooks for instrumenting edits and
// conversions.
//
// Libraries never depend on a metrics or tracing backend. Instead they call
// the registered hooks, which default to no-ops. An application registers its
// own implementations once at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditHooks(&myEditHooks{})
//	    observability.SetConvertHooks(&myConvertHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Edit().OnApply(sessionID, len(edits), len(out), duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events from editing sessions.
type EditHooks interface {
	// OnQueue records an edit queued by a structural intent.
	OnQueue(sessionID, intent string, offset, length int)

	// OnRejected records an intent that was not applicable.
	OnRejected(sessionID, intent, room string)

	// OnApply records a call to Apply.
	OnApply(sessionID string, edits, outputBytes int, duration time.Duration, err error)
}

// =============================================================================
// Convert Hooks
// =============================================================================

// ConvertHooks receives events from absolute-to-relative conversions.
type ConvertHooks interface {
	// OnConvertStart records the start of a conversion.
	OnConvertStart(anchor string, rooms int)

	// OnConvertComplete records the outcome of a conversion.
	OnConvertComplete(anchor string, assigned, unresolved int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnQueue(string, string, int, int)               {}
func (NoopEditHooks) OnRejected(string, string, string)              {}
func (NoopEditHooks) OnApply(string, int, int, time.Duration, error) {}

// NoopConvertHooks is a no-op implementation of ConvertHooks.
type NoopConvertHooks struct{}

func (NoopConvertHooks) OnConvertStart(string, int)                               {}
func (NoopConvertHooks) OnConvertComplete(string, int, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editHooks    EditHooks    = NoopEditHooks{}
	convertHooks ConvertHooks = NoopConvertHooks{}
	hooksMu      sync.RWMutex
)

// SetEditHooks registers custom edit hooks.
// This should be called once at application startup before any session is created.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// SetConvertHooks registers custom conversion hooks.
func SetConvertHooks(h ConvertHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		convertHooks = h
	}
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Convert returns the registered conversion hooks.
func Convert() ConvertHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return convertHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editHooks = NoopEditHooks{}
	convertHooks = NoopConvertHooks{}
}
