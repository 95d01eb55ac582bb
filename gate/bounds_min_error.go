// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build gatelog_min_error && !gatelog_min_fatal

package gate

import "github.com/stacklok/gatelog/level"

// DynamicMin is the most severe level a threshold may reach. This build
// hardwires FATAL and ERROR; every other surviving level can be silenced.
const DynamicMin = level.LevelError
