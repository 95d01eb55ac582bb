// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package actions

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/stacklok/gatelog/gate"
	"github.com/stacklok/gatelog/level"
)

const dateLayout = "2006-01-02 15:04:05.000"

// WriterOption configures the action built by [Writer].
type WriterOption func(*writerAction)

// WithClock sets the clock used for timestamps. The default is the real
// clock; tests inject a fake for deterministic output.
func WithClock(c clockwork.Clock) WriterOption {
	return func(a *writerAction) {
		a.clock = c
	}
}

// WithColor enables ANSI coloring of each line by its level.
func WithColor(coloring bool) WriterOption {
	return func(a *writerAction) {
		a.coloring = coloring
	}
}

// Writer returns an action that writes one timestamped line per log call
// to w. Writes are serialized, so one writer may back several systems.
func Writer(w io.Writer, opts ...WriterOption) gate.Action {
	a := &writerAction{
		clock: clockwork.NewRealClock(),
		w:     w,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a.log
}

type writerAction struct {
	coloring bool
	clock    clockwork.Clock

	mu sync.Mutex
	w  io.Writer
}

func (a *writerAction) log(lvl level.Level, format string, args ...any) {
	var b strings.Builder
	if a.coloring {
		b.WriteString(lvl.Color())
	}
	b.WriteString(a.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	b.WriteString(lvl.String())
	b.WriteByte(' ')
	fmt.Fprintf(&b, format, args...)
	if a.coloring {
		b.WriteString(level.ColorReset)
	}
	b.WriteByte('\n')

	a.mu.Lock()
	defer a.mu.Unlock()
	_, _ = io.WriteString(a.w, b.String())
}
