package registry

import "sync"

var (
	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

func init() {
	defaultRegistry = New()
}

// Default returns the shared registry. It starts without destinations;
// programs that prefer explicit lifetimes can ignore it and own their
// instances.
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the shared registry.
func SetDefault(r *Registry) {
	if r == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions using the shared registry

// Debug logs a debug payload through the shared registry.
func Debug(payload interface{}) { Default().Debug(payload) }

// Info logs an informational payload through the shared registry.
func Info(payload interface{}) { Default().Info(payload) }

// Warn logs a warning payload through the shared registry.
func Warn(payload interface{}) { Default().Warn(payload) }

// Error logs an error payload through the shared registry.
func Error(payload interface{}) { Default().Error(payload) }

// Critical logs a critical payload through the shared registry.
func Critical(payload interface{}) { Default().Critical(payload) }
