// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

// Package mathutil provides small numeric helpers shared across
// HybridBar components.
package mathutil

import "cmp"

// Clamp bounds value to the inclusive range [low, high]. The caller is
// responsible for low <= high.
func Clamp[T cmp.Ordered](value, low, high T) T {
	return min(max(value, low), high)
}
