// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a [-1,1] sample to 16-bit PCM, clamping values
// outside the range. 32767 is used as the scale so +1 does not overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Float32sToInt16 converts src into a new 16-bit PCM slice.
func Float32sToInt16(src []float32) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = Float32ToInt16(x)
	}

	return out
}
