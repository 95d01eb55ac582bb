// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Level{
		LevelFatal, LevelError, LevelWarn, LevelMsg,
		LevelInfo, LevelVerbose, LevelDebug, LevelTrace,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i],
			"%s must be more severe than %s", ordered[i-1], ordered[i])
	}

	assert.Less(t, LevelNone, LevelFatal, "NONE sits below the whole scale")
	assert.Greater(t, LevelAll, LevelTrace, "ALL sits above the whole scale")
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{LevelFatal, "FATAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelMsg, "MSG"},
		{LevelInfo, "INFO"},
		{LevelVerbose, "VERBOSE"},
		{LevelDebug, "DEBUG"},
		{LevelTrace, "TRACE"},
		{LevelNone, "NONE"},
		{LevelAll, "ALL"},
		{Level(42), "LEVEL(42)"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	t.Run("round-trips every label", func(t *testing.T) {
		t.Parallel()
		levels := []Level{
			LevelFatal, LevelError, LevelWarn, LevelMsg,
			LevelInfo, LevelVerbose, LevelDebug, LevelTrace,
			LevelNone, LevelAll,
		}
		for _, lvl := range levels {
			got, err := ParseLevel(lvl.String())
			require.NoError(t, err)
			assert.Equal(t, lvl, got)
		}
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()
		got, err := ParseLevel("verbose")
		require.NoError(t, err)
		assert.Equal(t, LevelVerbose, got)
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		t.Parallel()
		_, err := ParseLevel("LOUD")
		assert.Error(t, err)
	})
}

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level Level
		want  Level
	}{
		{"below the window clamps up", LevelFatal, LevelWarn},
		{"above the window clamps down", LevelTrace, LevelVerbose},
		{"inside the window passes through", LevelInfo, LevelInfo},
		{"lower boundary passes through", LevelWarn, LevelWarn},
		{"upper boundary passes through", LevelVerbose, LevelVerbose},
		{"NONE clamps up", LevelNone, LevelWarn},
		{"ALL clamps down", LevelAll, LevelVerbose},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.level.Clamp(LevelWarn, LevelVerbose))
		})
	}
}

func TestSevere(t *testing.T) {
	t.Parallel()

	assert.True(t, LevelFatal.Severe())
	assert.True(t, LevelError.Severe())
	assert.True(t, LevelWarn.Severe())
	assert.False(t, LevelMsg.Severe())
	assert.False(t, LevelInfo.Severe())
	assert.False(t, LevelTrace.Severe())
}
