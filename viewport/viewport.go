// SPDX-License-Identifier: EPL-2.0

package viewport

import (
	"math"

	"github.com/ik5/wavescrub/utils"
)

// Viewport is the window [Start, Start+Displayed()) over a recording of
// Duration seconds shown at Zoom.
type Viewport struct {
	Duration float64
	Zoom     float64
	Start    float64
}

// New returns the reset viewport for a recording of duration seconds.
func New(duration float64) Viewport {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		duration = 0
	}

	return Viewport{Duration: duration, Zoom: 1}
}

// Clamp bounds candidate to the valid start range of a window of displayed
// seconds over total seconds. It returns 0 when the window covers
// everything or total is 0. Clamp is idempotent.
func Clamp(candidate, total, displayed float64) float64 {
	if total <= 0 || displayed >= total {
		return 0
	}

	return utils.ClampFloat(candidate, 0, total-displayed)
}

// Displayed is the visible length in seconds, 0 for an empty recording.
func (v Viewport) Displayed() float64 {
	if v.Duration <= 0 || v.Zoom <= 0 {
		return 0
	}

	return v.Duration / v.Zoom
}

// End is the time at the right edge of the view.
func (v Viewport) End() float64 { return v.Start + v.Displayed() }

// TimeAt maps a horizontal ratio of the view (0 left, 1 right) to a time.
func (v Viewport) TimeAt(ratio float64) float64 {
	return v.Start + ratio*v.Displayed()
}

// RatioOf maps t to its horizontal ratio inside the view. Values outside
// [0, 1] are off screen. An empty view maps everything to 0.
func (v Viewport) RatioOf(t float64) float64 {
	d := v.Displayed()
	if d == 0 {
		return 0
	}

	return (t - v.Start) / d
}

// Contains reports whether t is inside the view.
func (v Viewport) Contains(t float64) bool {
	return t >= v.Start && t <= v.End()
}

// Valid reports whether v satisfies the start invariant.
func (v Viewport) Valid() bool {
	if v.Duration == 0 {
		return v.Start == 0 && v.Zoom == 1
	}

	d := v.Displayed()
	if d >= v.Duration {
		return v.Start == 0
	}

	return v.Start >= 0 && v.Start <= v.Duration-d
}

// ClampTime bounds t to [0, Duration].
func (v Viewport) ClampTime(t float64) float64 {
	return utils.ClampFloat(t, 0, v.Duration)
}

// Thumb returns the scrollbar thumb offset and width as ratios of the
// track. Both are 0 for an empty recording.
func (v Viewport) Thumb() (offset, width float64) {
	if v.Duration <= 0 {
		return 0, 0
	}

	return v.Start / v.Duration, v.Displayed() / v.Duration
}

// Scrollable reports whether part of the recording is outside the view.
func (v Viewport) Scrollable() bool {
	return v.Duration > 0 && v.Displayed() < v.Duration
}

// withStart commits candidate through Clamp. Moves at or below threshold
// are dropped.
func (v Viewport) withStart(candidate, threshold float64) (Viewport, bool) {
	if v.Duration <= 0 {
		return v.reset()
	}

	start := Clamp(candidate, v.Duration, v.Displayed())
	if math.Abs(start-v.Start) <= threshold {
		return v, false
	}

	v.Start = start

	return v, true
}

func (v Viewport) reset() (Viewport, bool) {
	r := New(0)
	return r, r != v
}
