// SPDX-License-Identifier: EPL-2.0

// Package player is a clock driven media element over a decoded clip.
// Playback position advances with wall time; when an output sink is set
// the clip is also played through it from the current position.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ik5/wavescrub/scrub"
	"github.com/ik5/wavescrub/utils"
)

// ErrNoMedia is returned by Play before a clip is loaded.
var ErrNoMedia = errors.New("player: no media loaded")

// Player implements timeline.Media.
type Player struct {
	// Logger defaults to slog.Default.
	Logger *slog.Logger

	mu     sync.Mutex
	now    func() time.Time
	out    scrub.Sink
	clip   scrub.Clip
	paused bool
	pos    float64   // position at anchor
	anchor time.Time // wall time pos was taken
	voice  scrub.Voice

	onPlay  func()
	onPause func()
}

// New returns a paused player. now defaults to time.Now; out may be nil
// for a silent player. The output must run at the clip's sample rate.
func New(out scrub.Sink, now func() time.Time) *Player {
	if now == nil {
		now = time.Now
	}

	return &Player{now: now, out: out, paused: true}
}

func (p *Player) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	return slog.Default()
}

// OnEvents registers the play and pause callbacks. They run outside the
// player's lock.
func (p *Player) OnEvents(played, paused func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.onPlay, p.onPause = played, paused
}

// Load pauses the player and replaces its clip.
func (p *Player) Load(c scrub.Clip) {
	hook := p.pause()

	p.mu.Lock()
	p.clip = c
	p.pos = 0
	p.mu.Unlock()

	run(hook)
}

func (p *Player) duration() float64 { return p.clip.Duration() }

// positionLocked is the playback position now, not clamped.
func (p *Player) positionLocked() float64 {
	if p.paused {
		return p.pos
	}

	return p.pos + p.now().Sub(p.anchor).Seconds()
}

func (p *Player) Play() error {
	p.mu.Lock()

	if p.clip.Empty() {
		p.mu.Unlock()
		return ErrNoMedia
	}
	if !p.paused {
		p.mu.Unlock()
		return nil
	}

	if p.pos >= p.duration() {
		p.pos = 0
	}
	if err := p.soundLocked(); err != nil {
		p.mu.Unlock()
		return err
	}

	p.paused = false
	p.anchor = p.now()
	hook := p.onPlay
	p.mu.Unlock()

	run(hook)

	return nil
}

func (p *Player) Pause() { run(p.pause()) }

// pause stops playback and returns the callback to run, if any.
func (p *Player) pause() func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.paused {
		return nil
	}

	p.pos = min(p.positionLocked(), p.duration())
	p.paused = true
	p.silenceLocked()

	return p.onPause
}

func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.paused
}

// CurrentTime returns the playback position. Reaching the end pauses the
// player there.
func (p *Player) CurrentTime() float64 {
	p.mu.Lock()

	t := p.positionLocked()
	if p.paused || t < p.duration() {
		p.mu.Unlock()
		return t
	}

	end := p.duration()
	p.pos = end
	p.paused = true
	p.silenceLocked()
	hook := p.onPause
	p.mu.Unlock()

	run(hook)

	return end
}

// SetCurrentTime moves the position, clamped to the clip. A playing
// player keeps playing from there.
func (p *Player) SetCurrentTime(t float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pos = utils.ClampFloat(t, 0, p.duration())
	p.anchor = p.now()

	if p.paused {
		return
	}
	if err := p.soundLocked(); err != nil {
		p.logger().Warn("restarting playback", "position", p.pos, "error", err)
	}
}

// soundLocked (re)starts the output voice at pos.
func (p *Player) soundLocked() error {
	p.silenceLocked()

	if p.out == nil {
		return nil
	}

	from := min(int(p.pos*float64(p.clip.SampleRate)), len(p.clip.Samples))
	v, err := p.out.Play(p.clip.Samples[from:])
	if err != nil {
		return fmt.Errorf("player: output: %w", err)
	}
	p.voice = v

	return nil
}

func (p *Player) silenceLocked() {
	if p.voice == nil {
		return
	}
	if err := p.voice.Stop(); err != nil {
		p.logger().Debug("stopping output voice", "error", err)
	}
	p.voice = nil
}

func run(f func()) {
	if f != nil {
		f()
	}
}
