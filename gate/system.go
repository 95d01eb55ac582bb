// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"sync/atomic"

	"github.com/stacklok/gatelog/level"
)

// System is one named logging system: a single threshold cell plus the
// action that performs output. Systems are created with [Registry.Define]
// and live for the life of their registry.
//
// The threshold is a relaxed atomic. Concurrent SetLevel and log calls are
// safe; a threshold change is eventually visible to other goroutines with
// no ordering guarantee relative to log calls already in flight.
type System struct {
	name   string
	action *atomic.Pointer[Action]
	lvl    atomic.Int32
}

// act invokes the registry's current output action. The action pointer is
// shared with the owning registry so Registry.SetAction retargets every
// system at once.
func (s *System) act(lvl level.Level, format string, args ...any) {
	(*s.action.Load())(lvl, format, args...)
}

// Name returns the name the system was defined under.
func (s *System) Name() string {
	return s.name
}

// Level returns the current threshold. When dynamic adjustment is compiled
// out (-tags gatelog_static) it is the constant DynamicMax: everything not
// statically deleted is statically active.
func (s *System) Level() level.Level {
	if !DynamicEnabled {
		return DynamicMax
	}
	return level.Level(s.lvl.Load())
}

// SetLevel sets the threshold to requested clamped into
// [DynamicMin, DynamicMax] and returns the value that took effect.
// When dynamic adjustment is compiled out this is a no-op that returns
// the pinned DynamicMax.
func (s *System) SetLevel(requested level.Level) level.Level {
	if !DynamicEnabled {
		return DynamicMax
	}
	clamped := requested.Clamp(DynamicMin, DynamicMax)
	s.lvl.Store(int32(clamped))
	return clamped
}

// Enabled reports whether a call site at lvl would fire right now: false
// above DynamicMax, true at or below DynamicMin (or whenever dynamic
// adjustment is compiled out), and a threshold comparison in between.
func (s *System) Enabled(lvl level.Level) bool {
	if lvl > DynamicMax {
		return false
	}
	if !DynamicEnabled || lvl <= DynamicMin {
		return true
	}
	return level.Level(s.lvl.Load()) >= lvl
}

// Log emits at an arbitrary level, subject to the same gating as the
// per-level methods. Prefer the per-level methods at call sites with a
// fixed severity; their gate comparisons are against constants and the
// statically dead ones compile away.
func (s *System) Log(lvl level.Level, format string, args ...any) {
	if !s.Enabled(lvl) {
		return
	}
	s.act(lvl, format, args...)
}

// The per-level methods below repeat the gate inline rather than calling
// Log so that every comparison is between constants where the level is
// fixed. A method whose level lies above DynamicMax reduces to a bare
// return; one at or below DynamicMin loses the threshold load.

// Fatal logs at FATAL. It does not terminate the process; FATAL only
// classifies severity.
func (s *System) Fatal(format string, args ...any) {
	if level.LevelFatal > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelFatal > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelFatal {
		return
	}
	s.act(level.LevelFatal, format, args...)
}

// Error logs at ERROR.
func (s *System) Error(format string, args ...any) {
	if level.LevelError > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelError > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelError {
		return
	}
	s.act(level.LevelError, format, args...)
}

// Warn logs at WARN.
func (s *System) Warn(format string, args ...any) {
	if level.LevelWarn > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelWarn > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelWarn {
		return
	}
	s.act(level.LevelWarn, format, args...)
}

// Msg logs at MSG.
func (s *System) Msg(format string, args ...any) {
	if level.LevelMsg > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelMsg > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelMsg {
		return
	}
	s.act(level.LevelMsg, format, args...)
}

// Info logs at INFO.
func (s *System) Info(format string, args ...any) {
	if level.LevelInfo > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelInfo > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelInfo {
		return
	}
	s.act(level.LevelInfo, format, args...)
}

// Verbose logs at VERBOSE.
func (s *System) Verbose(format string, args ...any) {
	if level.LevelVerbose > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelVerbose > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelVerbose {
		return
	}
	s.act(level.LevelVerbose, format, args...)
}

// Debug logs at DEBUG. Deleted under the default bounds; build with
// -tags gatelog_max_all to compile DEBUG call sites in.
func (s *System) Debug(format string, args ...any) {
	if level.LevelDebug > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelDebug > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelDebug {
		return
	}
	s.act(level.LevelDebug, format, args...)
}

// Trace logs at TRACE. Deleted under the default bounds; build with
// -tags gatelog_max_all to compile TRACE call sites in.
func (s *System) Trace(format string, args ...any) {
	if level.LevelTrace > DynamicMax {
		return
	}
	if DynamicEnabled && level.LevelTrace > DynamicMin &&
		level.Level(s.lvl.Load()) < level.LevelTrace {
		return
	}
	s.act(level.LevelTrace, format, args...)
}
