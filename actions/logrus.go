// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"github.com/sirupsen/logrus"

	"github.com/stacklok/gatelog/gate"
	"github.com/stacklok/gatelog/level"
)

// Logrus returns an action that forwards to a logrus logger via Logf, which
// logs at FatalLevel without exiting. MSG and INFO both map to InfoLevel;
// VERBOSE and DEBUG to DebugLevel.
func Logrus(l *logrus.Logger) gate.Action {
	return func(lvl level.Level, format string, args ...any) {
		l.Logf(logrusLevel(lvl), format, args...)
	}
}

func logrusLevel(lvl level.Level) logrus.Level {
	switch lvl {
	case level.LevelFatal:
		return logrus.FatalLevel
	case level.LevelError:
		return logrus.ErrorLevel
	case level.LevelWarn:
		return logrus.WarnLevel
	case level.LevelMsg, level.LevelInfo:
		return logrus.InfoLevel
	case level.LevelVerbose, level.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
