// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ik5/wavescrub/debounce"
	"github.com/ik5/wavescrub/scrub"
	"github.com/ik5/wavescrub/viewport"
	"github.com/ik5/wavescrub/waveform"
)

// Media is the external player the timeline drives. Its play and pause
// events must be forwarded to MediaPlayed and MediaPaused.
type Media interface {
	Play() error
	Pause()
	Paused() bool
	CurrentTime() float64
	SetCurrentTime(t float64)
}

// Extractor decodes media for LoadMedia; *waveform.Extractor implements it.
type Extractor interface {
	Extract(ctx context.Context, r io.Reader) (*waveform.Result, error)
}

// Pointer is a horizontal pointer position over a surface Width wide.
type Pointer struct {
	X     float64
	Width float64
}

// Ratio is X/Width, 0 for a surface without width.
func (p Pointer) Ratio() float64 {
	if p.Width <= 0 {
		return 0
	}

	return p.X / p.Width
}

// WheelEvent is one wheel or trackpad notch.
type WheelEvent struct {
	DeltaX float64
	DeltaY float64
	Ctrl   bool
	Meta   bool
}

// State is a snapshot for renderers.
type State struct {
	Viewport    viewport.Viewport
	CurrentTime float64
	Playing     bool
	Seeking     bool
	Interacting bool
	Loaded      bool
	Loading     bool
	Format      string
}

type scrollGrab struct {
	start float64 // view start when the thumb was grabbed
	ratio float64 // pointer ratio of the track at grab time
}

// Orchestrator is safe for concurrent use; handlers serialize on one
// mutex and always act on the latest committed viewport.
type Orchestrator struct {
	mu sync.Mutex

	opts      Options
	log       *slog.Logger
	media     Media
	extractor Extractor
	preview   *scrub.Previewer
	deb       *debounce.Debouncer

	vp          viewport.Viewport
	wave        waveform.Buffer
	format      string
	loaded      bool
	currentTime float64
	seeking     bool
	lastPreview float64
	grab        *scrollGrab

	loadGen    uint64
	loadCancel context.CancelFunc

	playing atomic.Bool
}

// New returns an Orchestrator with nothing loaded. A nil extractor uses
// a zero waveform.Extractor; a nil previewer disables scrub audio.
func New(media Media, extractor Extractor, preview *scrub.Previewer, opts Options) *Orchestrator {
	opts = opts.withDefaults()
	if extractor == nil {
		extractor = &waveform.Extractor{Logger: opts.Logger}
	}

	o := &Orchestrator{
		opts:      opts,
		log:       opts.Logger,
		media:     media,
		extractor: extractor,
		preview:   preview,
		deb:       debounce.New(opts.Clock, opts.Debounce),
		vp:        viewport.New(0),
	}
	o.playing.Store(!media.Paused())

	return o
}

// MediaPlayed records a play event from the player.
func (o *Orchestrator) MediaPlayed() { o.playing.Store(true) }

// MediaPaused records a pause event from the player.
func (o *Orchestrator) MediaPaused() { o.playing.Store(false) }

// State returns the current snapshot without polling the player.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.stateLocked()
}

func (o *Orchestrator) stateLocked() State {
	return State{
		Viewport:    o.vp,
		CurrentTime: o.currentTime,
		Playing:     o.playing.Load(),
		Seeking:     o.seeking,
		Interacting: o.deb.Active(),
		Loaded:      o.loaded,
		Loading:     o.loadCancel != nil,
		Format:      o.format,
	}
}

// Waveform returns the buffer of the loaded media. It is never modified.
func (o *Orchestrator) Waveform() waveform.Buffer {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.wave
}

// Clip returns the decoded mono PCM of the loaded media.
func (o *Orchestrator) Clip() scrub.Clip {
	if o.preview == nil {
		return scrub.Clip{}
	}

	return o.preview.Clip()
}

// Tick runs once per frame. It refreshes the cursor from the player while
// not seeking, and lets the view follow playback when playing, not
// seeking and no gesture is in progress.
func (o *Orchestrator) Tick() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return o.stateLocked()
	}

	if !o.seeking {
		o.currentTime = o.vp.ClampTime(o.media.CurrentTime())
	}

	if o.playing.Load() && !o.seeking && !o.deb.Active() {
		o.vp, _ = o.vp.Follow(o.currentTime, o.opts.Params)
	}

	return o.stateLocked()
}

// TogglePlayPause pauses a playing player or starts a paused one. A failed
// start is logged, returned, and leaves the timeline not playing.
func (o *Orchestrator) TogglePlayPause() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.loaded {
		return ErrNotLoaded
	}

	if !o.media.Paused() {
		o.media.Pause()
		return nil
	}

	if err := o.media.Play(); err != nil {
		o.log.Error("starting playback", "error", err)
		o.playing.Store(false)

		return fmt.Errorf("timeline: play: %w", err)
	}

	return nil
}

// Close cancels any load in flight and silences previews.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.loadCancel != nil {
		o.loadCancel()
		o.loadCancel = nil
	}
	o.loadGen++
	o.deb.Stop()
	o.stopPreview()
}

func (o *Orchestrator) startPreview(t float64) {
	if o.preview == nil {
		return
	}

	// errors are already logged by the previewer and never stop a drag
	_ = o.preview.Preview(t)
}

func (o *Orchestrator) stopPreview() {
	if o.preview != nil {
		o.preview.Stop()
	}
}
