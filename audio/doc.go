// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives that turn an encoded file into
// mono float samples for waveform extraction and scrub preview.
//
// # Source
//
// Every decoder and processor implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns interleaved samples in [-1, 1] and io.EOF once the
// stream is exhausted. Sources that know their length also implement
// Lengther so callers can size buffers up front.
//
// # Pipelines
//
// Sources chain:
//
//	src, format, err := registry.Open(f)
//	mono, err := audio.NewChannelPicker(src, 0) // or audio.NewMonoMixer(src)
//	out := audio.NewResampler(mono, 8000)
//	samples, err := audio.ReadAllContext(ctx, out, 0)
//
// # Registry
//
// Registry maps a format name to its Decoder. Open sniffs the first bytes
// of a stream to choose one, so callers never need to trust file
// extensions. Failures are wrapped in ErrDecode.
package audio
