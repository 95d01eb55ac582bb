// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"fmt"
	"os"

	"github.com/stacklok/gatelog/level"
)

// Action is the output operation invoked once the gate decides a call site
// fires. The format string and arguments are the caller's, passed through
// untouched; lvl is the call site's severity. Actions must not retain args
// after returning.
//
// The gatelog/actions package provides adapters for common sinks; any
// function with this signature works.
type Action func(lvl level.Level, format string, args ...any)

// DefaultAction writes the formatted message followed by a newline to
// stderr for WARN and more severe levels, and to stdout otherwise. It is
// the action used by registries built without [WithAction].
func DefaultAction(lvl level.Level, format string, args ...any) {
	w := os.Stdout
	if lvl.Severe() {
		w = os.Stderr
	}
	fmt.Fprintf(w, format+"\n", args...)
}
