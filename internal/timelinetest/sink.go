// SPDX-License-Identifier: EPL-2.0

package timelinetest

import (
	"sync"

	"github.com/ik5/wavescrub/scrub"
)

// RecordingSink records every slice played and tracks which voices are
// still sounding.
type RecordingSink struct {
	mu      sync.Mutex
	rate    int
	played  [][]float32
	voices  []*RecordedVoice
	playErr error
}

var _ scrub.Sink = (*RecordingSink)(nil)

func NewRecordingSink(rate int) *RecordingSink { return &RecordingSink{rate: rate} }

// FailPlay makes later Play calls return err. nil clears it.
func (s *RecordingSink) FailPlay(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.playErr = err
}

func (s *RecordingSink) SampleRate() int { return s.rate }

func (s *RecordingSink) Play(samples []float32) (scrub.Voice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playErr != nil {
		return nil, s.playErr
	}

	s.played = append(s.played, append([]float32(nil), samples...))
	v := &RecordedVoice{sink: s}
	s.voices = append(s.voices, v)

	return v, nil
}

// Played returns copies of every slice passed to Play.
func (s *RecordingSink) Played() [][]float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([][]float32(nil), s.played...)
}

// Sounding counts voices that were started and not stopped.
func (s *RecordingSink) Sounding() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, v := range s.voices {
		if !v.stopped {
			n++
		}
	}

	return n
}

// RecordedVoice is a voice returned by RecordingSink.
type RecordedVoice struct {
	sink    *RecordingSink
	stopped bool
}

func (v *RecordedVoice) Stop() error {
	v.sink.mu.Lock()
	defer v.sink.mu.Unlock()

	v.stopped = true

	return nil
}
