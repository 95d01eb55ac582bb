// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build !gatelog_min_fatal && !gatelog_min_error

package gate

import "github.com/stacklok/gatelog/level"

// DynamicMin is the most severe level a threshold may reach. Call sites at
// or more severe than this are hardwired: they always fire and cannot be
// silenced at runtime.
const DynamicMin = level.LevelWarn
