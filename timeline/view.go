// SPDX-License-Identifier: EPL-2.0

package timeline

// Wheel routes a wheel event: Ctrl or Meta zooms around the pointer, a
// plain wheel pans. It reports whether the view changed.
func (o *Orchestrator) Wheel(ev WheelEvent, ptr Pointer) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return false
	}

	o.deb.Ping()

	var changed bool
	if ev.Ctrl || ev.Meta {
		o.vp, changed = o.vp.ZoomWheel(ev.DeltaY, ptr.Ratio(), o.opts.Params)
	} else {
		o.vp, changed = o.vp.PanWheel(ev.DeltaX, ev.DeltaY, ptr.Width, o.opts.Params)
	}

	return changed
}

// SetZoom applies a zoom slider value keeping the view center fixed.
func (o *Orchestrator) SetZoom(z float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded || z == o.vp.Zoom {
		return false
	}

	o.deb.Ping()

	var changed bool
	o.vp, changed = o.vp.ZoomSlider(z, o.opts.Params)

	return changed
}

// ScrollTo moves the view start, as dragging the scrollbar thumb does.
func (o *Orchestrator) ScrollTo(start float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return false
	}

	o.deb.Ping()

	var changed bool
	o.vp, changed = o.vp.ScrollTo(start, o.opts.Params)

	return changed
}

// TrackClick centers the scrollbar thumb under a click at ratio of the
// track.
func (o *Orchestrator) TrackClick(ratio float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return false
	}

	o.deb.Ping()

	var changed bool
	o.vp, changed = o.vp.TrackClick(ratio, o.opts.Params)

	return changed
}

// GrabScrollbar starts a thumb drag with the pointer at ratio of the track.
func (o *Orchestrator) GrabScrollbar(ratio float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return
	}

	o.deb.Ping()
	o.grab = &scrollGrab{start: o.vp.Start, ratio: ratio}
}

// DragScrollbar moves a grabbed thumb with the pointer now at ratio.
func (o *Orchestrator) DragScrollbar(ratio float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.grab == nil {
		return false
	}

	o.deb.Ping()

	var changed bool
	start := o.grab.start + (ratio-o.grab.ratio)*o.vp.Duration
	o.vp, changed = o.vp.ScrollTo(start, o.opts.Params)

	return changed
}

// ReleaseScrollbar ends a thumb drag.
func (o *Orchestrator) ReleaseScrollbar() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.grab = nil
}

// CenterOn recenters the view on t. It pings the debouncer so playback
// follow does not undo the jump.
func (o *Orchestrator) CenterOn(t float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.centerOnLocked(t)
}

func (o *Orchestrator) centerOnLocked(t float64) bool {
	if !o.loaded {
		return false
	}

	o.deb.Ping()

	var changed bool
	o.vp, changed = o.vp.CenterOn(o.vp.ClampTime(t), o.opts.Params)

	return changed
}

// JumpTo moves the player to t (clamped) and centers the view on it, as
// label navigation does.
func (o *Orchestrator) JumpTo(t float64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return ErrNotLoaded
	}

	t = o.vp.ClampTime(t)
	o.media.SetCurrentTime(t)
	o.currentTime = t
	o.centerOnLocked(t)

	return nil
}
