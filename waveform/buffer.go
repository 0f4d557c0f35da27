// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"

	"github.com/ik5/wavescrub/viewport"
)

// Options control bucketing and decoding.
type Options struct {
	BaseBuckets   int // buckets for recordings under ten seconds
	BucketsPer10s int // extra buckets per full ten seconds
	MaxBuckets    int

	Mixdown    bool // average all channels instead of reading channel 0
	TargetRate int  // resample the decoded clip to this rate; 0 keeps it
}

func DefaultOptions() Options {
	return Options{
		BaseBuckets:   1000,
		BucketsPer10s: 50,
		MaxBuckets:    8000,
	}
}

// BucketCount returns min(MaxBuckets, BaseBuckets + floor(duration/10)*BucketsPer10s).
func BucketCount(duration float64, o Options) int {
	if duration <= 0 || math.IsNaN(duration) {
		return 0
	}

	n := float64(o.BaseBuckets) + math.Floor(duration/10)*float64(o.BucketsPer10s)

	return int(min(n, float64(o.MaxBuckets)))
}

// Buffer holds one value in [0, 1] per bucket over the whole recording.
type Buffer []float64

// Compute splits samples into n near-equal buckets, takes the RMS of each
// and normalizes by the largest. When there are fewer samples than
// buckets a bucket repeats its nearest sample.
func Compute(samples []float32, n int) Buffer {
	if n <= 0 || len(samples) == 0 {
		return nil
	}

	out := make(Buffer, n)
	total := len(samples)
	peak := 0.0

	for i := range n {
		lo := i * total / n
		hi := (i + 1) * total / n
		if hi <= lo {
			hi = min(lo+1, total)
		}

		var sum float64
		for _, s := range samples[lo:hi] {
			v := float64(s)
			sum += v * v
		}

		rms := math.Sqrt(sum / float64(hi-lo))
		out[i] = rms
		peak = max(peak, rms)
	}

	if peak == 0 {
		return out
	}

	for i := range out {
		out[i] /= peak
	}

	return out
}

// Visible returns the buckets under vp and the index of the first one.
func (b Buffer) Visible(vp viewport.Viewport) (Buffer, int) {
	n := len(b)
	if n == 0 || vp.Duration <= 0 {
		return nil, 0
	}

	scale := float64(n) / vp.Duration
	lo := int(math.Floor(vp.Start * scale))
	hi := int(math.Ceil(vp.End() * scale))
	lo = min(max(lo, 0), n)
	hi = min(max(hi, lo), n)

	return b[lo:hi], lo
}

// Columns resamples b to width values by taking the peak of each column,
// for renderers narrower than the bucket count.
func (b Buffer) Columns(width int) []float64 {
	if width <= 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, width)
	for c := range width {
		lo := c * len(b) / width
		hi := max((c+1)*len(b)/width, lo+1)
		hi = min(hi, len(b))

		for _, v := range b[lo:hi] {
			out[c] = max(out[c], v)
		}
	}

	return out
}
