// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"context"
	"fmt"
	"io"

	"github.com/ik5/wavescrub/scrub"
	"github.com/ik5/wavescrub/viewport"
)

// LoadMedia replaces the loaded media with r. The timeline is reset to
// "not loaded" immediately; the decoded result is installed only if no
// newer LoadMedia started meanwhile, otherwise ErrSuperseded is returned
// and the result dropped. A newer load also cancels the context of the
// older one. Decode failures leave the timeline reset, with the media
// paused, and wrap audio.ErrDecode.
//
// LoadMedia blocks while decoding and is meant to run on its own
// goroutine.
func (o *Orchestrator) LoadMedia(ctx context.Context, r io.Reader) error {
	o.mu.Lock()
	o.loadGen++
	gen := o.loadGen
	if o.loadCancel != nil {
		o.loadCancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	o.loadCancel = cancel
	o.resetLocked()
	o.mu.Unlock()

	res, err := o.extractor.Extract(ctx, r)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.loadGen {
		cancel()
		o.log.Debug("waveform load superseded", "generation", gen)

		return ErrSuperseded
	}

	cancel()
	o.loadCancel = nil

	if err != nil {
		o.log.Warn("loading media", "error", err)
		return fmt.Errorf("timeline: load: %w", err)
	}

	o.vp = viewport.New(res.Duration)
	o.wave = res.Buffer
	o.format = res.Format
	o.loaded = res.Duration > 0
	if o.preview != nil {
		o.preview.SetClip(res.PCM)
	}
	if o.opts.OnLoad != nil {
		o.opts.OnLoad(res)
	}

	o.log.Info("media loaded",
		"format", res.Format,
		"duration", res.Duration,
		"buckets", len(res.Buffer),
	)

	return nil
}

// resetLocked returns to the "not loaded" state. Playback stops with it;
// a timeline without media cannot pause the player afterwards.
func (o *Orchestrator) resetLocked() {
	if !o.media.Paused() {
		o.media.Pause()
	}
	o.playing.Store(false)
	o.vp = viewport.New(0)
	o.wave = nil
	o.format = ""
	o.loaded = false
	o.currentTime = 0
	o.seeking = false
	o.grab = nil
	o.deb.Stop()
	if o.preview != nil {
		o.preview.SetClip(scrub.Clip{})
	}
}
