// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/stacklok/gatelog/gate"
	"github.com/stacklok/gatelog/level"
)

// Logr returns an action that forwards to a logr.Logger. Severe levels
// (WARN and up) go through Error with a nil error; the rest map onto logr
// verbosities, MSG at V(0) down to TRACE at V(4). The original level label
// rides along as the "severity" key.
func Logr(l logr.Logger) gate.Action {
	return func(lvl level.Level, format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		if lvl.Severe() {
			l.Error(nil, msg, "severity", lvl.String())
			return
		}
		l.V(verbosity(lvl)).Info(msg, "severity", lvl.String())
	}
}

func verbosity(lvl level.Level) int {
	v := int(lvl - level.LevelMsg)
	if v < 0 {
		return 0
	}
	return v
}
