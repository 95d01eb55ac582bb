// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gate

// The dynamic range [DynamicMin, DynamicMax] and the DynamicEnabled switch
// are declared as constants in the bounds_*.go files, one file per build-tag
// configuration. Keeping them constants is what lets the compiler delete
// call sites above DynamicMax and drop the threshold load at or below
// DynamicMin.

// The window must satisfy DynamicMin <= DynamicMax. A configuration that
// violates this makes the subtraction below negative and the constant
// conversion overflow, refusing to compile.
const _ = uint8(DynamicMax - DynamicMin)
