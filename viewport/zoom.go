// SPDX-License-Identifier: EPL-2.0

package viewport

// ZoomSlider sets the zoom level keeping the center of the view fixed.
// Reaching p.MinZoom snaps the view back to the start.
func (v Viewport) ZoomSlider(z float64, p Params) (Viewport, bool) {
	if v.Duration <= 0 {
		return v.reset()
	}

	z = p.clampZoom(z)
	if z == v.Zoom {
		return v, false
	}

	center := v.Start + v.Displayed()/2

	n := Viewport{Duration: v.Duration, Zoom: z}
	if z > p.MinZoom {
		n.Start = Clamp(center-n.Displayed()/2, n.Duration, n.Displayed())
	}

	return n, true
}

// ZoomWheel zooms one notch around the time under the pointer. A negative
// deltaY zooms in, a positive one zooms out and zero does nothing.
// ratio is pointerX / canvasWidth.
func (v Viewport) ZoomWheel(deltaY, ratio float64, p Params) (Viewport, bool) {
	if v.Duration <= 0 {
		return v.reset()
	}

	var z float64
	switch {
	case deltaY < 0:
		z = v.Zoom * (1 + p.WheelZoomStep)
	case deltaY > 0:
		z = v.Zoom * (1 - p.WheelZoomStep)
	default:
		return v, false
	}

	z = p.clampZoom(z)
	if z == v.Zoom {
		return v, false
	}

	return v.ZoomAt(z, ratio), true
}

// ZoomAt sets the zoom level to z keeping the time at ratio of the view
// under the same ratio afterwards. z is used as given.
func (v Viewport) ZoomAt(z, ratio float64) Viewport {
	if v.Duration <= 0 || z <= 0 {
		return New(0)
	}

	anchor := v.TimeAt(ratio)

	n := Viewport{Duration: v.Duration, Zoom: z}
	n.Start = Clamp(anchor-ratio*n.Displayed(), n.Duration, n.Displayed())

	return n
}
