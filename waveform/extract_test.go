// SPDX-License-Identifier: EPL-2.0

package waveform_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/wavescrub/audio"
	"github.com/ik5/wavescrub/internal/audiotest"
	"github.com/ik5/wavescrub/waveform"
)

func TestExtract_WAV(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV(8000, audiotest.Tone(8000, 2.5, 440))

	var e waveform.Extractor
	res, err := e.Extract(context.Background(), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if math.Abs(res.Duration-2.5) > 1e-9 {
		t.Errorf("Duration = %v, want 2.5", res.Duration)
	}
	if res.Format != audio.FormatWAV {
		t.Errorf("Format = %q, want %q", res.Format, audio.FormatWAV)
	}
	if len(res.Buffer) != 1000 {
		t.Errorf("len(Buffer) = %d, want 1000", len(res.Buffer))
	}
	if len(res.PCM.Samples) != 20000 || res.PCM.SampleRate != 8000 {
		t.Errorf("PCM = %d samples at %d Hz", len(res.PCM.Samples), res.PCM.SampleRate)
	}

	peak := 0.0
	for _, v := range res.Buffer {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("bucket value %v outside [0, 1]", v)
		}
		peak = max(peak, v)
	}
	if peak != 1 {
		t.Errorf("loudest bucket = %v, want 1", peak)
	}
}

func TestExtract_SilentIsAllZero(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV(8000, make([]float32, 8000))

	var e waveform.Extractor
	res, err := e.Extract(context.Background(), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	for i, v := range res.Buffer {
		if v != 0 {
			t.Fatalf("bucket %d = %v, want 0", i, v)
		}
	}
}

func TestExtract_TargetRate(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV(16000, audiotest.Tone(16000, 1, 300))

	e := waveform.Extractor{Options: &waveform.Options{
		BaseBuckets:   100,
		BucketsPer10s: 10,
		MaxBuckets:    500,
		TargetRate:    8000,
	}}
	res, err := e.Extract(context.Background(), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if res.PCM.SampleRate != 8000 {
		t.Errorf("PCM rate = %d, want 8000", res.PCM.SampleRate)
	}
	if math.Abs(res.Duration-1) > 0.001 {
		t.Errorf("Duration = %v, want about 1", res.Duration)
	}
	if len(res.Buffer) != 100 {
		t.Errorf("len(Buffer) = %d, want 100", len(res.Buffer))
	}
}

// stereoDecoder ignores its input and yields a stereo source whose left
// channel is silent.
type stereoDecoder struct{}

func (stereoDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewMockSource(8000, 2, 8000, func(_, ch int) float32 {
		if ch == 0 {
			return 0
		}
		return 0.8
	}), nil
}

func TestExtract_ChannelSelection(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	reg.Register(audio.FormatWAV, stereoDecoder{})
	header := audiotest.WAV(8000, []float32{0})

	left := waveform.Extractor{Registry: reg}
	res, err := left.Extract(context.Background(), bytes.NewReader(header))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.PCM.Samples[100] != 0 {
		t.Errorf("channel 0 sample = %v, want 0", res.PCM.Samples[100])
	}

	opts := waveform.DefaultOptions()
	opts.Mixdown = true
	mixed := waveform.Extractor{Registry: reg, Options: &opts}
	res, err = mixed.Extract(context.Background(), bytes.NewReader(header))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if math.Abs(float64(res.PCM.Samples[100])-0.4) > 1e-6 {
		t.Errorf("mixdown sample = %v, want 0.4", res.PCM.Samples[100])
	}
}

func TestExtract_DecodeErrors(t *testing.T) {
	t.Parallel()

	valid := audiotest.WAV(8000, audiotest.Tone(8000, 1, 440))

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "text", data: []byte("this is not audio at all")},
		{name: "truncated wav", data: valid[:30]},
		{name: "no samples", data: audiotest.WAV(8000, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var e waveform.Extractor
			res, err := e.Extract(context.Background(), bytes.NewReader(tt.data))
			if !errors.Is(err, audio.ErrDecode) {
				t.Errorf("Extract() error = %v, want ErrDecode", err)
			}
			if res != nil {
				t.Errorf("Extract() result = %+v, want nil", res)
			}
		})
	}
}

func TestExtract_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var e waveform.Extractor
	_, err := e.Extract(ctx, bytes.NewReader(audiotest.WAV(8000, audiotest.Tone(8000, 1, 440))))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Extract() error = %v, want context.Canceled", err)
	}
	if errors.Is(err, audio.ErrDecode) {
		t.Error("cancellation reported as a decode failure")
	}
}
