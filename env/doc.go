// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

The gate package consumes a Reader through gate.WithEnv to resolve
per-system level overrides at Define time.

# Testing

Use MapReader to supply fixed values without touching the process
environment:

	reader := env.MapReader{"GATELOG_LEVEL_SCHEDULER": "VERBOSE"}

A generated gomock mock is available in the mocks sub-package for tests
that assert on access patterns:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("MY_VAR").Return("test-value")

	result := myFunc(mock)

# Design

Production code accepts an env.Reader, while tests substitute MapReader or
the generated mock.
*/
package env
