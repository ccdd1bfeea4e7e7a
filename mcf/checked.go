// SPDX-License-Identifier: MIT

package mcf

import "math"

// addInt64 returns a+b and false if the sum overflows.
func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) == (b > 0) {
		return c, true
	}

	return 0, false
}

// mulInt64 returns a·b for non-negative operands and false on overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}

	return a * b, true
}
