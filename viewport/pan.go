// SPDX-License-Identifier: EPL-2.0

package viewport

import "math"

// PanWheel pans by a wheel or trackpad gesture. The dominant axis wins so
// vertical two-finger swipes pan as well. width is the canvas width in
// pixels.
func (v Viewport) PanWheel(dx, dy, width float64, p Params) (Viewport, bool) {
	d := v.Displayed()
	if d == 0 || width <= 0 {
		return v, false
	}

	delta := dy
	if math.Abs(dx) > math.Abs(dy) {
		delta = dx
	}

	return v.withStart(v.Start+delta/width*d*p.WheelPanSensitivity, p.UpdateThreshold)
}

// ScrollTo moves the view to start, as a scrollbar thumb drag does.
func (v Viewport) ScrollTo(start float64, p Params) (Viewport, bool) {
	return v.withStart(start, p.UpdateThreshold)
}

// TrackClick centers the scrollbar thumb under a click at ratio of the
// track width.
func (v Viewport) TrackClick(ratio float64, p Params) (Viewport, bool) {
	if v.Duration <= 0 {
		return v.reset()
	}

	_, width := v.Thumb()

	return v.withStart((ratio-width/2)*v.Duration, p.UpdateThreshold)
}

// CenterOn recenters the view on t without changing the zoom.
func (v Viewport) CenterOn(t float64, p Params) (Viewport, bool) {
	return v.withStart(t-v.Displayed()/2, p.UpdateThreshold)
}

// Follow keeps the playback position t in view during playback. When t
// enters the left edge buffer (and the view is not at the start) t is
// moved to p.FollowLeft of the view; when it enters the right buffer
// (and the view does not already reach the end) t is moved to
// p.FollowRight.
func (v Viewport) Follow(t float64, p Params) (Viewport, bool) {
	d := v.Displayed()
	if d == 0 {
		return v, false
	}

	buffer := d * p.FollowEdge

	switch {
	case t < v.Start+buffer && v.Start > 0:
		return v.withStart(t-d*p.FollowLeft, p.UpdateThreshold)
	case t > v.End()-buffer && v.End() < v.Duration-p.EndTolerance:
		return v.withStart(t-d*p.FollowRight, p.UpdateThreshold)
	}

	return v, false
}
