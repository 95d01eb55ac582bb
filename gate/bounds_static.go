// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build gatelog_static

package gate

// DynamicEnabled reports whether thresholds may be adjusted at runtime.
// This build pins every threshold: SetLevel is a no-op, Level always
// returns DynamicMax, and every surviving call site fires unconditionally.
const DynamicEnabled = false
