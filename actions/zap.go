// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/stacklok/gatelog/gate"
	"github.com/stacklok/gatelog/level"
)

// Zap returns an action that forwards to a zap sugared logger. The gatelog
// scale folds onto zap's: FATAL and ERROR log as errors, WARN as a warning,
// MSG and INFO as info, and everything less severe as debug. FATAL does not
// call the exiting zap methods.
func Zap(l *zap.SugaredLogger) gate.Action {
	return func(lvl level.Level, format string, args ...any) {
		switch lvl {
		case level.LevelFatal, level.LevelError:
			l.Errorf(format, args...)
		case level.LevelWarn:
			l.Warnf(format, args...)
		case level.LevelMsg, level.LevelInfo:
			l.Infof(format, args...)
		default:
			l.Debugf(format, args...)
		}
	}
}

// NewLogr returns a logr.Logger backed by the given zap logger, for callers
// that consume the logr interface. Pair it with [Logr] to route gate output
// through the same bridge.
func NewLogr(l *zap.Logger) logr.Logger {
	return zapr.NewLogger(l)
}
