// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelPicker exposes a single channel of an interleaved source as mono.
// Waveform extraction reads channel 0 this way by default.
type ChannelPicker struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelPicker returns a mono view of channel ch of src.
func NewChannelPicker(src Source, ch int) (*ChannelPicker, error) {
	if ch < 0 || ch >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, ch, src.Channels())
	}

	return &ChannelPicker{
		src:     src,
		channel: ch,
		tmp:     make([]float32, 4096),
	}, nil
}

func (p *ChannelPicker) SampleRate() int { return p.src.SampleRate() }
func (p *ChannelPicker) Channels() int   { return 1 }
func (p *ChannelPicker) BufSize() int    { return p.src.BufSize() }
func (p *ChannelPicker) Frames() int64   { return framesOf(p.src) }

func (p *ChannelPicker) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (p *ChannelPicker) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := p.src.Channels()
	if channels == 1 {
		return p.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	p.tmp = grow(p.tmp, need)

	n, err := p.src.ReadSamples(p.tmp[:need])
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	for f := range frames {
		dst[f] = p.tmp[f*channels+p.channel]
	}

	return frames, err
}
