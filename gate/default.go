// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"sync/atomic"

	"github.com/stacklok/gatelog/level"
)

// The package-level functions forward to a process-wide default registry,
// for programs that want the conventional global-logger surface instead of
// threading a *Registry through their wiring.

var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(NewRegistry())
}

// Default returns the process-wide registry backing the package-level
// functions.
func Default() *Registry {
	return defaultRegistry.Load()
}

// ReplaceDefault swaps the process-wide registry, typically once at startup
// to install a custom action or environment overrides. It returns a
// function that restores the previous registry, for use in tests.
func ReplaceDefault(r *Registry) func() {
	prev := defaultRegistry.Swap(r)
	return func() {
		defaultRegistry.Store(prev)
	}
}

// Define creates a logging system in the default registry.
// See [Registry.Define].
func Define(name string, def level.Level) *System {
	return Default().Define(name, def)
}

// Lookup returns a system from the default registry.
// See [Registry.Lookup].
func Lookup(name string) (*System, bool) {
	return Default().Lookup(name)
}

// MustLookup returns a system from the default registry and panics if it
// has not been defined. See [Registry.MustLookup].
func MustLookup(name string) *System {
	return Default().MustLookup(name)
}

// GetLevel returns the named system's threshold from the default registry.
// See [Registry.GetLevel].
func GetLevel(name string) (level.Level, bool) {
	return Default().GetLevel(name)
}

// SetLevel adjusts the named system's threshold in the default registry.
// See [Registry.SetLevel].
func SetLevel(name string, requested level.Level) (level.Level, bool) {
	return Default().SetLevel(name, requested)
}

// SetAction replaces the default registry's output action, retargeting
// every system already defined in it. See [Registry.SetAction].
func SetAction(a Action) {
	Default().SetAction(a)
}
