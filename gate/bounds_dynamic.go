// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build !gatelog_static

package gate

// DynamicEnabled reports whether thresholds may be adjusted at runtime.
// Build with -tags gatelog_static to pin every threshold at DynamicMax.
const DynamicEnabled = true
