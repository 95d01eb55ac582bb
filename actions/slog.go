// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stacklok/gatelog/gate"
	"github.com/stacklok/gatelog/level"
)

// Slog returns an action that forwards to a slog logger. The eight-level
// scale folds onto slog's four; the original label rides along as the
// "severity" attribute so MSG and INFO stay distinguishable.
func Slog(l *slog.Logger) gate.Action {
	return func(lvl level.Level, format string, args ...any) {
		l.Log(context.Background(), slogLevel(lvl),
			fmt.Sprintf(format, args...),
			slog.String("severity", lvl.String()))
	}
}

func slogLevel(lvl level.Level) slog.Level {
	switch lvl {
	case level.LevelFatal, level.LevelError:
		return slog.LevelError
	case level.LevelWarn:
		return slog.LevelWarn
	case level.LevelMsg, level.LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
