// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package level defines the severity scale shared by all gatelog packages.

Levels form a closed ordered enumeration where a lower numeric value is more
severe: [LevelFatal] (0) is the most severe and [LevelTrace] (7) the least.
Two sentinels sit outside the normal scale: [LevelNone] disables all dynamic
output and [LevelAll] enables everything. Sentinels are valid as bounds and
as threshold arguments, never as call-site levels.

# Parsing

[ParseLevel] accepts the upper- or lower-case label of any level, including
the sentinels:

	lvl, err := level.ParseLevel("verbose")

# Routing

[Level.Severe] reports whether a level is WARN or more severe, which is the
boundary the default output action uses to choose between stderr and stdout.

# Stability

This package is Beta stability. The API may have minor changes before
reaching stable status in v1.0.0.
*/
package level
