// SPDX-License-Identifier: EPL-2.0

package timeline

import "math"

// SeekStart begins a playhead drag at t: the player is paused and moved
// to t (clamped) and a scrub preview starts.
func (o *Orchestrator) SeekStart(t float64) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return ErrNotLoaded
	}

	o.seekStartLocked(o.vp.ClampTime(t))

	return nil
}

// SeekStartAt begins a playhead drag at the time under ptr.
func (o *Orchestrator) SeekStartAt(ptr Pointer) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return ErrNotLoaded
	}

	o.seekStartLocked(o.vp.ClampTime(o.vp.TimeAt(ptr.Ratio())))

	return nil
}

func (o *Orchestrator) seekStartLocked(t float64) {
	o.deb.Ping()
	o.seeking = true
	o.media.Pause()
	o.media.SetCurrentTime(t)
	o.currentTime = t
	o.lastPreview = t
	o.startPreview(t)
}

// SeekMove follows the pointer during a playhead drag. Near either edge
// the view pans so the playhead keeps moving with the pointer, and the
// time is resolved against the panned view. The scrub preview restarts
// only once the cursor moved more than ScrubMoveThreshold since the last
// one. It reports the new cursor time; outside a drag it does nothing.
func (o *Orchestrator) SeekMove(ptr Pointer) (float64, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.seeking {
		return o.currentTime, false
	}

	o.deb.Ping()

	var t float64
	o.vp, t = o.vp.SeekTarget(ptr.Ratio(), o.opts.Params)
	o.media.SetCurrentTime(t)
	o.currentTime = t

	if math.Abs(t-o.lastPreview) > o.opts.ScrubMoveThreshold {
		o.lastPreview = t
		o.startPreview(t)
	}

	return t, true
}

// SeekEnd finishes a playhead drag. Playback stays paused.
func (o *Orchestrator) SeekEnd() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.seeking {
		return
	}

	o.seeking = false
	o.stopPreview()
}

// StepFrames moves the cursor by n frames at the configured frame rate,
// clamped to the recording, and plays a scrub preview there.
func (o *Orchestrator) StepFrames(n int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return ErrNotLoaded
	}

	base := o.currentTime
	if !o.seeking {
		base = o.media.CurrentTime()
	}

	t := o.vp.ClampTime(base + float64(n)/o.opts.FrameRate)
	o.media.SetCurrentTime(t)
	o.currentTime = t
	o.startPreview(t)

	return nil
}
