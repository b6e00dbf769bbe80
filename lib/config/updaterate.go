// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"

	"github.com/Pebor/HybridBar/lib/mathutil"
)

const (
	// defaultUpdateRate is the refresh interval in milliseconds used
	// when hybrid.update_rate is not configured.
	defaultUpdateRate = 100

	// minUpdateRate and maxUpdateRate bound the configured value.
	// Anything faster than 5ms burns CPU for no visible gain; anything
	// slower than 10s makes the bar appear frozen.
	minUpdateRate = 5
	maxUpdateRate = 10_000
)

// UpdateRate returns the interval between UI refresh ticks, read from
// hybrid.update_rate and clamped to [5ms, 10s]. An absent key falls
// back to 100ms.
func (c *Cache) UpdateRate() (time.Duration, error) {
	rate := int32(defaultUpdateRate)
	value, ok, err := c.TryGet("hybrid", "update_rate", false, false)
	if err != nil {
		return 0, err
	}
	if ok {
		rate = mathutil.Clamp(value.Int, minUpdateRate, maxUpdateRate)
	}

	// Clamping makes a non-positive rate unreachable; the check stays
	// so a bounds change cannot silently yield a zero interval.
	if rate <= 0 {
		return 0, &FatalError{Op: "converting", Root: "hybrid", Key: "update_rate", Err: fmt.Errorf("non-positive rate %d", rate)}
	}
	return time.Duration(rate) * time.Millisecond, nil
}
