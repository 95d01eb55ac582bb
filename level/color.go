// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package level

// ColorReset restores the terminal's default rendition after a colored span.
const ColorReset = "\033[0m"

const (
	colorFatal   = "\033[41m"
	colorError   = "\033[31m"
	colorWarn    = "\033[33m"
	colorMsg     = "\033[32m"
	colorInfo    = "\033[36m"
	colorVerbose = "\033[34m"
	colorDebug   = "\033[37m"
	colorTrace   = "\033[38m"
)

// Color returns the ANSI escape sequence the Writer action uses to color
// output at level l, or an empty string for values outside the enumeration.
func (l Level) Color() string {
	switch l {
	case LevelFatal:
		return colorFatal
	case LevelError:
		return colorError
	case LevelWarn:
		return colorWarn
	case LevelMsg:
		return colorMsg
	case LevelInfo:
		return colorInfo
	case LevelVerbose:
		return colorVerbose
	case LevelDebug:
		return colorDebug
	case LevelTrace:
		return colorTrace
	default:
		return ""
	}
}
