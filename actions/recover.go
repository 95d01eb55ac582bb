// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"github.com/stacklok/gatelog/gate"
	"github.com/stacklok/gatelog/level"
)

// Recover wraps an action so that a panic in the sink is swallowed instead
// of unwinding into the logging caller. Logging degrades by losing the
// message, never by failing the code that logged.
func Recover(a gate.Action) gate.Action {
	return func(lvl level.Level, format string, args ...any) {
		defer func() {
			_ = recover()
		}()
		a(lvl, format, args...)
	}
}
