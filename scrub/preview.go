// SPDX-License-Identifier: EPL-2.0

package scrub

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ik5/wavescrub/audio"
)

// Voice is one playing preview.
type Voice interface {
	Stop() error
}

// Sink plays mono float samples at SampleRate.
type Sink interface {
	SampleRate() int
	Play(samples []float32) (Voice, error)
}

// Options tune the preview slices.
type Options struct {
	Slice time.Duration // length of one preview
	Gain  float64       // linear gain applied to the slice
}

// DefaultOptions returns 40 ms slices at gain 0.3.
func DefaultOptions() Options {
	return Options{
		Slice: 40 * time.Millisecond,
		Gain:  0.3,
	}
}

// Previewer is safe for concurrent use.
type Previewer struct {
	Logger *slog.Logger

	mu    sync.Mutex
	sink  Sink
	opts  Options
	clip  Clip
	voice Voice
}

// NewPreviewer returns a Previewer playing into sink. A nil sink makes
// every Preview fail with ErrNoSink.
func NewPreviewer(sink Sink, opts Options) *Previewer {
	return &Previewer{
		Logger: slog.Default(),
		sink:   sink,
		opts:   opts,
	}
}

func (p *Previewer) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	return slog.Default()
}

// SetClip replaces the clip and stops any preview of the old one.
func (p *Previewer) SetClip(c Clip) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
	p.clip = c
}

// Clip returns the current clip.
func (p *Previewer) Clip() Clip {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.clip
}

// Preview stops the playing slice and starts one at t. An empty clip is a
// silent no-op. Failures are logged and returned; the previous voice is
// gone either way.
func (p *Previewer) Preview(t float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	if p.clip.Empty() {
		return nil
	}
	if p.sink == nil {
		return ErrNoSink
	}

	lo, hi := p.clip.window(t, p.opts.Slice.Seconds())

	gain := float32(p.opts.Gain)
	slice := make([]float32, hi-lo)
	for i, s := range p.clip.Samples[lo:hi] {
		slice[i] = s * gain
	}

	slice, err := p.convert(slice)
	if err != nil {
		p.logger().Warn("scrub preview failed", "time", t, "error", err)
		return err
	}

	voice, err := p.sink.Play(slice)
	if err != nil {
		p.logger().Warn("scrub preview failed", "time", t, "error", err)
		return fmt.Errorf("scrub: play: %w", err)
	}

	p.voice = voice

	return nil
}

// convert resamples a slice to the sink rate when the rates differ.
func (p *Previewer) convert(slice []float32) ([]float32, error) {
	rate := p.sink.SampleRate()
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sink reports %d", ErrInvalidRate, rate)
	}
	if rate == p.clip.SampleRate {
		return slice, nil
	}

	src := audio.NewBufferSource(slice, p.clip.SampleRate, 1)
	out, err := audio.ReadAll(audio.NewResampler(src, rate), len(slice)*rate/p.clip.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("scrub: resample: %w", err)
	}

	return out, nil
}

// Stop silences the current preview, if any.
func (p *Previewer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *Previewer) stopLocked() {
	if p.voice == nil {
		return
	}

	if err := p.voice.Stop(); err != nil {
		p.logger().Debug("stopping scrub voice", "error", err)
	}
	p.voice = nil
}
