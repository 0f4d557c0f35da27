// SPDX-License-Identifier: EPL-2.0

// Package speaker plays mono PCM on the default audio device.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/ik5/wavescrub/scrub"
)

// DefaultRate is the device rate the CLI opens and decodes to.
const DefaultRate = 22050

// Sink is a scrub.Sink on the system speaker. Voices are mixed, so a
// caller wanting one voice at a time stops the previous one itself.
type Sink struct {
	rate beep.SampleRate
}

var _ scrub.Sink = (*Sink)(nil)

// Open initialises the device at rate with about latency of buffering.
// Only one Sink should be open per process.
func Open(rate int, latency time.Duration) (*Sink, error) {
	sr := beep.SampleRate(rate)
	if err := speaker.Init(sr, max(sr.N(latency), 1)); err != nil {
		return nil, fmt.Errorf("speaker: init at %d Hz: %w", rate, err)
	}

	return &Sink{rate: sr}, nil
}

func (s *Sink) SampleRate() int { return int(s.rate) }

// Play starts samples and returns at once.
func (s *Sink) Play(samples []float32) (scrub.Voice, error) {
	v := newVoice(samples)
	speaker.Play(v)

	return v, nil
}

// Close silences every voice.
func (s *Sink) Close() {
	speaker.Clear()
}

// voice streams a mono slice to both speaker channels.
type voice struct {
	mu      sync.Mutex
	samples []float32
	pos     int
	stopped bool
}

func newVoice(samples []float32) *voice { return &voice{samples: samples} }

func (v *voice) Stream(buf [][2]float64) (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.stopped || v.pos >= len(v.samples) {
		return 0, false
	}

	n := min(len(buf), len(v.samples)-v.pos)
	for i := range n {
		s := float64(v.samples[v.pos+i])
		buf[i] = [2]float64{s, s}
	}
	v.pos += n

	return n, true
}

func (v *voice) Err() error { return nil }

// Stop ends the voice; the mixer drops it on its next read.
func (v *voice) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.stopped = true

	return nil
}
