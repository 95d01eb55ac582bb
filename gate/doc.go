// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package gate provides named logging systems whose per-level call sites are
resolved at build time against a static dynamic range.

Every call site is resolved to exactly one of three behaviors, decided by the
compile-time constants [DynamicMin], [DynamicMax] and [DynamicEnabled]:

  - levels above [DynamicMax] are deleted: the comparison is against a
    constant, the branch is provably dead, and the compiler removes the call
    body entirely;
  - levels at or below [DynamicMin] are hardwired: they always invoke the
    output action with no threshold load;
  - levels inside the window invoke the action only when the system's current
    threshold permits.

# Defining systems

A logging system is one named threshold cell inside a [Registry]:

	reg := gate.NewRegistry()
	sys := reg.Define("scheduler", level.LevelError)

	sys.Warn("queue depth %d exceeds soft limit", depth)
	sys.Debug("woke worker %d", id) // deleted under the default bounds

A process-wide default registry backs the package-level functions, mirroring
how most programs use a single global logger:

	gate.Define("scheduler", level.LevelError)
	gate.MustLookup("scheduler").Info("started")

# Adjusting thresholds

[System.SetLevel] clamps the requested level into [DynamicMin, DynamicMax]
and returns the value that took effect. The threshold is a relaxed atomic:
changes become visible to concurrent log calls eventually, with no ordering
guarantee relative to calls already in flight.

# Build-time configuration

Bounds are selected with build tags rather than runtime configuration, so
that the gate comparisons stay constant-foldable:

	-tags gatelog_static     pin thresholds; SetLevel becomes a no-op
	-tags gatelog_max_all    delete nothing; TRACE call sites survive
	-tags gatelog_max_msg    delete everything less severe than MSG
	-tags gatelog_min_fatal  hardwire only FATAL
	-tags gatelog_min_error  hardwire FATAL and ERROR

A bounds combination with DynamicMin above DynamicMax does not compile.

# Output

The action invoked on emit is supplied per registry with [WithAction] and
may be replaced later with [Registry.SetAction], which retargets every
system the registry has defined. The built-in default writes the formatted
message to stderr for WARN and more severe levels and to stdout otherwise. The gate never formats messages
itself; the format string and arguments pass through to the action untouched.

# Stability

This package is Beta stability. The API may have minor changes before
reaching stable status in v1.0.0.
*/
package gate
