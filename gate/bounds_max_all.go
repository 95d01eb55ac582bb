// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build gatelog_max_all && !gatelog_max_msg

package gate

import "github.com/stacklok/gatelog/level"

// DynamicMax is the least severe level a threshold may reach. This build
// deletes nothing: DEBUG and TRACE call sites survive and are subject to
// the runtime threshold.
const DynamicMax = level.LevelAll
