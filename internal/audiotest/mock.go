// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"io"
	"math"

	"github.com/ik5/wavescrub/formats/wav"
	"github.com/ik5/wavescrub/utils"
)

// MockSource generates frames on demand from a waveform function.
// It satisfies audio.Source and audio.Lengther.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // frames to generate
	generated  int
	waveform   func(frame, channel int) float32

	// HideLength makes Frames report -1, like a non-seekable stream.
	HideLength bool
	// Err, when set, is returned by ReadSamples instead of data.
	Err error
}

func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewStepSource is silent for the first half and at value for the second.
func NewStepSource(sampleRate, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, 1, frames, func(frame, _ int) float32 {
		if frame < frames/2 {
			return 0
		}
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) Frames() int64 {
	if m.HideLength {
		return -1
	}

	return int64(m.frames)
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += n

	if m.generated >= m.frames {
		return n * m.channels, io.EOF
	}

	return n * m.channels, nil
}

// WAV renders mono samples as an in-memory 16-bit WAV file.
func WAV(sampleRate int, samples []float32) []byte {
	buf := new(bytes.Buffer)
	_ = wav.WriteWAV16(buf, sampleRate, utils.Float32sToInt16(samples))

	return buf.Bytes()
}

// Tone returns seconds of a full-scale sine at frequency, sampled at rate.
func Tone(rate int, seconds, frequency float64) []float32 {
	out := make([]float32, int(float64(rate)*seconds))
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * frequency * float64(i) / float64(rate)))
	}

	return out
}
