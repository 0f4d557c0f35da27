// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampFloat bounds x to [lo, hi]. NaN maps to lo.
func ClampFloat(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
