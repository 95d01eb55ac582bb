// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build gatelog_max_msg && !gatelog_max_all

package gate

import "github.com/stacklok/gatelog/level"

// DynamicMax is the least severe level a threshold may reach. This build
// deletes every call site less severe than MSG.
const DynamicMax = level.LevelMsg
