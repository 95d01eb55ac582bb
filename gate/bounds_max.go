// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build !gatelog_max_all && !gatelog_max_msg

package gate

import "github.com/stacklok/gatelog/level"

// DynamicMax is the least severe level a threshold may reach. Call sites
// less severe than this are deleted at compile time.
const DynamicMax = level.LevelVerbose
