// SPDX-License-Identifier: EPL-2.0

package viewport

// DragFollow pans the view while the playhead itself is dragged to t.
// Inside the left edge buffer t is placed at p.DragLeft of the view,
// inside the right one at p.DragRight. Unlike Follow there is no end
// tolerance: the clamp alone stops the view at either end.
func (v Viewport) DragFollow(t float64, p Params) (Viewport, bool) {
	d := v.Displayed()
	if d == 0 {
		return v, false
	}

	buffer := d * p.DragEdge

	switch {
	case t < v.Start+buffer:
		return v.withStart(t-d*p.DragLeft, p.UpdateThreshold)
	case t > v.End()-buffer:
		return v.withStart(t-d*p.DragRight, p.UpdateThreshold)
	}

	return v, false
}

// SeekTarget resolves a pointer at ratio of the view during a playhead
// drag. It returns the possibly panned view and the time under the
// pointer in that view, clamped to the recording.
func (v Viewport) SeekTarget(ratio float64, p Params) (Viewport, float64) {
	t := v.ClampTime(v.TimeAt(ratio))

	n, moved := v.DragFollow(t, p)
	if !moved {
		return v, t
	}

	return n, n.ClampTime(n.TimeAt(ratio))
}
