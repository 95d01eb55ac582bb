// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package actions provides output actions for gatelog registries: adapters
that carry a fired log call to a concrete sink.

The gate package decides whether a call site fires; an action decides where
the bytes go. Every adapter here returns a gate.Action and can be installed
with gate.WithAction:

	reg := gate.NewRegistry(gate.WithAction(actions.Writer(os.Stderr)))

# Adapters

  - [Writer] writes timestamped lines to one io.Writer, with optional ANSI
    coloring and an injectable clock.
  - [Zap], [Logrus], [Slog] and [Logr] forward to the corresponding logging
    backends, mapping the eight-level gatelog scale onto each backend's
    coarser one. None of them maps FATAL to an exiting call; FATAL only
    classifies severity.
  - [Recover] wraps any action so that a panicking sink cannot fail the
    logging caller.

# Double filtering

Backends apply their own level filtering after the gate's. A DEBUG call that
survives the gate is still dropped by a logrus logger set to InfoLevel.
Configure the backend to accept everything and let the gate decide, or
accept the intersection.

# Stability

This package is Beta stability. The API may have minor changes before
reaching stable status in v1.0.0.
*/
package actions
