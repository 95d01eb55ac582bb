// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/stacklok/gatelog/env"
	"github.com/stacklok/gatelog/level"
)

// envPrefix is the prefix for per-system level overrides, so the override
// for a system named "scheduler" is GATELOG_LEVEL_SCHEDULER.
const envPrefix = "GATELOG_LEVEL_"

// Registry owns a set of named logging systems. It is the explicit
// name-to-threshold mapping: systems are created once with [Registry.Define]
// and retrieved elsewhere with [Registry.Lookup] or [Registry.MustLookup].
//
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	systems map[string]*System
	action  atomic.Pointer[Action]
	env     env.Reader
}

// Option configures a registry created by [NewRegistry].
type Option func(*Registry)

// WithAction sets the output action shared by every system the registry
// defines. The default is [DefaultAction].
func WithAction(a Action) Option {
	return func(r *Registry) {
		if a != nil {
			r.action.Store(&a)
		}
	}
}

// WithEnv enables environment overrides for compiled-in default levels.
// When set, Define consults GATELOG_LEVEL_<NAME> (name upper-cased, runs of
// non-alphanumerics collapsed to underscores) and, if it parses as a level,
// uses it in place of the compiled default. The override is clamped like
// any other level; an unparsable value is ignored.
func WithEnv(r env.Reader) Option {
	return func(reg *Registry) {
		reg.env = r
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		systems: make(map[string]*System),
	}
	var def Action = DefaultAction
	r.action.Store(&def)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetAction replaces the registry's output action. The change retargets
// every system already defined as well as all subsequent Defines; like a
// threshold change, it becomes visible to concurrent log calls eventually,
// with no ordering guarantee relative to calls already in flight. A nil
// action is ignored.
func (r *Registry) SetAction(a Action) {
	if a != nil {
		r.action.Store(&a)
	}
}

// Define creates the logging system named name with its threshold
// initialized to def clamped into [DynamicMin, DynamicMax], after applying
// any environment override. It returns the new system.
//
// Defining the same name twice, or an empty name, panics: both are wiring
// mistakes of the same kind the original linkage model rejects as
// conflicting symbols, and are never a runtime condition.
func (r *Registry) Define(name string, def level.Level) *System {
	if name == "" {
		panic("gatelog: logging system name must not be empty")
	}
	if r.env != nil {
		if v := r.env.Getenv(EnvKey(name)); v != "" {
			if lvl, err := level.ParseLevel(v); err == nil {
				def = lvl
			}
		}
	}

	s := &System{name: name, action: &r.action}
	s.lvl.Store(int32(def.Clamp(DynamicMin, DynamicMax)))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.systems[name]; dup {
		panic(fmt.Sprintf("gatelog: logging system %q defined twice", name))
	}
	r.systems[name] = s
	return s
}

// Lookup returns the system named name, and whether it has been defined.
func (r *Registry) Lookup(name string) (*System, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.systems[name]
	return s, ok
}

// MustLookup returns the system named name and panics if it has not been
// defined. Use it where the original model would have been a link error:
// referring to a system the program never wires up.
func (r *Registry) MustLookup(name string) *System {
	s, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("gatelog: logging system %q is not defined", name))
	}
	return s
}

// GetLevel returns the current threshold of the named system, and whether
// the system has been defined.
func (r *Registry) GetLevel(name string) (level.Level, bool) {
	s, ok := r.Lookup(name)
	if !ok {
		return level.LevelNone, false
	}
	return s.Level(), true
}

// SetLevel sets the named system's threshold to requested clamped into
// [DynamicMin, DynamicMax]. It returns the value that took effect and
// whether the system has been defined.
func (r *Registry) SetLevel(name string, requested level.Level) (level.Level, bool) {
	s, ok := r.Lookup(name)
	if !ok {
		return level.LevelNone, false
	}
	return s.SetLevel(requested), true
}

// Systems returns the sorted names of every defined system, for operator
// surfaces that enumerate or adjust thresholds.
func (r *Registry) Systems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EnvKey returns the environment variable consulted for the named system's
// level override under [WithEnv].
func EnvKey(name string) string {
	var b strings.Builder
	b.WriteString(envPrefix)
	// The prefix already ends in an underscore, so a leading separator in
	// the name must not produce another one.
	prevUnderscore := true
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteRune(c - 'a' + 'A')
			prevUnderscore = false
		case (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			b.WriteRune(c)
			prevUnderscore = false
		default:
			if !prevUnderscore {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}
	return b.String()
}
