// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
)

// BufferSource serves interleaved samples already held in memory.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	pos        int
}

// NewBufferSource wraps samples (interleaved, channels per frame) as a Source.
// The slice is not copied.
func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	if channels < 1 {
		channels = 1
	}

	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }
func (b *BufferSource) Frames() int64   { return int64(len(b.samples) / b.channels) }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.pos:])
	n -= n % b.channels
	b.pos += n

	if b.pos >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadAll tolerates
// before treating the source as exhausted.
const maxEmptyReads = 64

// ReadAll drains src into one slice. hint, when positive, is the expected
// number of samples and is used to size the result up front.
func ReadAll(src Source, hint int) ([]float32, error) {
	return ReadAllContext(context.Background(), src, hint)
}

// ReadAllContext is ReadAll that stops with ctx.Err() once ctx is done.
// The samples read so far are returned with any error.
func ReadAllContext(ctx context.Context, src Source, hint int) ([]float32, error) {
	channels := max(src.Channels(), 1)
	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	bufSize -= bufSize % channels

	out := make([]float32, 0, max(hint, 0))
	buf := make([]float32, bufSize)
	empty := 0

	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return out, nil
		}
	}
}
