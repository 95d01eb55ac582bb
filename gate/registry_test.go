// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build !gatelog_static

package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/gatelog/env"
	"github.com/stacklok/gatelog/env/mocks"
	"github.com/stacklok/gatelog/level"
)

func TestRegistry_DefineAndLookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	defined := reg.Define("scheduler", level.LevelVerbose)

	t.Run("lookup returns the defined system", func(t *testing.T) {
		t.Parallel()
		got, ok := reg.Lookup("scheduler")
		require.True(t, ok)
		assert.Same(t, defined, got)
		assert.Equal(t, "scheduler", got.Name())
	})

	t.Run("lookup misses an undefined name", func(t *testing.T) {
		t.Parallel()
		_, ok := reg.Lookup("no-such-system")
		assert.False(t, ok)
	})

	t.Run("must-lookup returns the defined system", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, defined, reg.MustLookup("scheduler"))
	})

	t.Run("must-lookup panics on an undefined name", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			reg.MustLookup("no-such-system")
		})
	})
}

func TestRegistry_DefineMisuse(t *testing.T) {
	t.Parallel()

	t.Run("duplicate name panics", func(t *testing.T) {
		t.Parallel()
		reg := NewRegistry()
		reg.Define("dup", level.LevelWarn)
		assert.Panics(t, func() {
			reg.Define("dup", level.LevelInfo)
		})
	})

	t.Run("empty name panics", func(t *testing.T) {
		t.Parallel()
		reg := NewRegistry()
		assert.Panics(t, func() {
			reg.Define("", level.LevelWarn)
		})
	})
}

func TestRegistry_LevelByName(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Define("worker", level.LevelVerbose)

	got, ok := reg.GetLevel("worker")
	require.True(t, ok)
	assert.Equal(t, level.LevelVerbose, got)

	set, ok := reg.SetLevel("worker", level.LevelMsg)
	require.True(t, ok)
	assert.Equal(t, level.LevelMsg, set)

	got, ok = reg.GetLevel("worker")
	require.True(t, ok)
	assert.Equal(t, level.LevelMsg, got)

	_, ok = reg.GetLevel("missing")
	assert.False(t, ok)
	_, ok = reg.SetLevel("missing", level.LevelMsg)
	assert.False(t, ok)
}

func TestRegistry_Systems(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Define("b", level.LevelWarn)
	reg.Define("a", level.LevelWarn)
	reg.Define("c", level.LevelWarn)

	assert.Equal(t, []string{"a", "b", "c"}, reg.Systems())
}

func TestRegistry_WithAction(t *testing.T) {
	t.Parallel()

	c := &capture{}
	reg := NewRegistry(WithAction(c.action))
	sys := reg.Define("worker", level.LevelVerbose)

	sys.Warn("hello %s", "world")

	entries := c.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, entry{level.LevelWarn, "hello world"}, entries[0])
}

func TestRegistry_SetAction(t *testing.T) {
	t.Parallel()

	t.Run("retargets already-defined systems", func(t *testing.T) {
		t.Parallel()
		before := &capture{}
		after := &capture{}
		reg := NewRegistry(WithAction(before.action))
		sys := reg.Define("worker", level.LevelVerbose)

		sys.Warn("to the old sink")
		reg.SetAction(after.action)
		sys.Warn("to the new sink")

		require.Len(t, before.snapshot(), 1)
		entries := after.snapshot()
		require.Len(t, entries, 1)
		assert.Equal(t, entry{level.LevelWarn, "to the new sink"}, entries[0])
	})

	t.Run("applies to subsequent defines", func(t *testing.T) {
		t.Parallel()
		c := &capture{}
		reg := NewRegistry()
		reg.SetAction(c.action)

		sys := reg.Define("late", level.LevelVerbose)
		sys.Warn("captured")

		require.Len(t, c.snapshot(), 1)
	})

	t.Run("nil action is ignored", func(t *testing.T) {
		t.Parallel()
		c := &capture{}
		reg := NewRegistry(WithAction(c.action))
		sys := reg.Define("worker", level.LevelVerbose)

		reg.SetAction(nil)
		sys.Warn("still captured")

		require.Len(t, c.snapshot(), 1)
	})
}

func TestRegistry_WithEnv(t *testing.T) {
	t.Parallel()

	t.Run("override replaces the compiled default", func(t *testing.T) {
		t.Parallel()
		reg := NewRegistry(WithEnv(env.MapReader{
			"GATELOG_LEVEL_SCHEDULER": "VERBOSE",
		}))
		sys := reg.Define("scheduler", level.LevelWarn)
		assert.Equal(t, level.LevelVerbose, sys.Level())
	})

	t.Run("override is clamped like any level", func(t *testing.T) {
		t.Parallel()
		reg := NewRegistry(WithEnv(env.MapReader{
			"GATELOG_LEVEL_SCHEDULER": "TRACE",
		}))
		sys := reg.Define("scheduler", level.LevelWarn)
		assert.Equal(t, DynamicMax, sys.Level())
	})

	t.Run("unparsable override is ignored", func(t *testing.T) {
		t.Parallel()
		reg := NewRegistry(WithEnv(env.MapReader{
			"GATELOG_LEVEL_SCHEDULER": "LOUD",
		}))
		sys := reg.Define("scheduler", level.LevelInfo)
		assert.Equal(t, level.LevelInfo, sys.Level())
	})

	t.Run("reader is consulted with the derived key", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		mock := mocks.NewMockReader(ctrl)
		mock.EXPECT().Getenv("GATELOG_LEVEL_HTTP_SERVER").Return("MSG")

		reg := NewRegistry(WithEnv(mock))
		sys := reg.Define("http.server", level.LevelWarn)
		assert.Equal(t, level.LevelMsg, sys.Level())
	})
}

func TestEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "scheduler", "GATELOG_LEVEL_SCHEDULER"},
		{"mixed case", "HttpServer", "GATELOG_LEVEL_HTTPSERVER"},
		{"dotted name", "http.server", "GATELOG_LEVEL_HTTP_SERVER"},
		{"dashes collapse", "a--b", "GATELOG_LEVEL_A_B"},
		{"digits survive", "worker2", "GATELOG_LEVEL_WORKER2"},
		{"leading separator folds into the prefix", ".x", "GATELOG_LEVEL_X"},
		{"leading separators collapse", "--x", "GATELOG_LEVEL_X"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, EnvKey(tc.in))
		})
	}
}
