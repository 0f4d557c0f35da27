// SPDX-License-Identifier: EPL-2.0

package scrub

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/wavescrub/formats/wav"
	"github.com/ik5/wavescrub/utils"
)

// Clip is mono PCM in [-1, 1].
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Duration is the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}

	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Empty reports whether the clip has nothing to play.
func (c Clip) Empty() bool { return len(c.Samples) == 0 || c.SampleRate <= 0 }

// window returns the sample range [start, start+n) of length seconds
// beginning at t, shifted left when it would run past the end.
func (c Clip) window(t, length float64) (int, int) {
	if c.Empty() {
		return 0, 0
	}

	n := int(math.Round(length * float64(c.SampleRate)))
	n = min(max(n, 1), len(c.Samples))

	t = utils.ClampFloat(t, 0, c.Duration())
	start := int(t * float64(c.SampleRate))
	start = min(start, len(c.Samples)-n)

	return start, start + n
}

// Segment returns the part of c that is window seconds long and starts
// window/2 before t, shifted to stay inside the clip. The samples are
// shared with c.
func Segment(c Clip, t, window float64) Clip {
	lo, hi := c.window(t-window/2, window)

	return Clip{Samples: c.Samples[lo:hi], SampleRate: c.SampleRate}
}

// WriteSegmentWAV writes c as a 16-bit mono WAV file.
func WriteSegmentWAV(w io.Writer, c Clip) error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, c.SampleRate)
	}
	if len(c.Samples) == 0 {
		return ErrEmptySegment
	}

	if err := wav.WriteWAV16(w, c.SampleRate, utils.Float32sToInt16(c.Samples)); err != nil {
		return fmt.Errorf("scrub: writing segment: %w", err)
	}

	return nil
}
