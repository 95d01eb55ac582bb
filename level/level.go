// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package level

import (
	"fmt"
	"strings"
)

// Level is the severity of a log call or threshold. Lower values are more
// severe; LevelFatal is 0.
type Level int8

const (
	// LevelFatal classifies fatal conditions.
	LevelFatal Level = iota
	// LevelError classifies non-fatal errors.
	LevelError
	// LevelWarn classifies likely problems.
	LevelWarn
	// LevelMsg classifies terse messages during normal operation.
	LevelMsg
	// LevelInfo classifies progress messages during normal operation.
	LevelInfo
	// LevelVerbose classifies verbose messages during normal operation.
	LevelVerbose
	// LevelDebug classifies debug messages.
	LevelDebug
	// LevelTrace classifies trace debugging.
	LevelTrace
)

const (
	// LevelNone is a sentinel threshold that suppresses all dynamic output.
	// It is valid only as a bound, never as a call-site level.
	LevelNone Level = -1
	// LevelAll is a sentinel threshold that permits every level.
	// It is valid only as a bound, never as a call-site level.
	LevelAll Level = 0x7f
)

const (
	lblFatal   = "FATAL"
	lblError   = "ERROR"
	lblWarn    = "WARN"
	lblMsg     = "MSG"
	lblInfo    = "INFO"
	lblVerbose = "VERBOSE"
	lblDebug   = "DEBUG"
	lblTrace   = "TRACE"
	lblNone    = "NONE"
	lblAll     = "ALL"
)

// String returns the upper-case label for l, or a numeric form for values
// outside the enumeration.
func (l Level) String() string {
	switch l {
	case LevelFatal:
		return lblFatal
	case LevelError:
		return lblError
	case LevelWarn:
		return lblWarn
	case LevelMsg:
		return lblMsg
	case LevelInfo:
		return lblInfo
	case LevelVerbose:
		return lblVerbose
	case LevelDebug:
		return lblDebug
	case LevelTrace:
		return lblTrace
	case LevelNone:
		return lblNone
	case LevelAll:
		return lblAll
	default:
		return fmt.Sprintf("LEVEL(%d)", int8(l))
	}
}

// ParseLevel converts a case-insensitive label into a Level. It accepts the
// eight call-site levels and the NONE/ALL sentinels.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case lblFatal:
		return LevelFatal, nil
	case lblError:
		return LevelError, nil
	case lblWarn:
		return LevelWarn, nil
	case lblMsg:
		return LevelMsg, nil
	case lblInfo:
		return LevelInfo, nil
	case lblVerbose:
		return LevelVerbose, nil
	case lblDebug:
		return LevelDebug, nil
	case lblTrace:
		return LevelTrace, nil
	case lblNone:
		return LevelNone, nil
	case lblAll:
		return LevelAll, nil
	default:
		return LevelNone, fmt.Errorf("unknown log level %q", s)
	}
}

// Clamp constrains l to lie within [lo, hi].
func (l Level) Clamp(lo, hi Level) Level {
	if l > hi {
		return hi
	}
	if l < lo {
		return lo
	}
	return l
}

// Severe reports whether l is WARN or more severe. The default output action
// routes severe levels to stderr and everything else to stdout.
func (l Level) Severe() bool {
	return l <= LevelWarn
}
