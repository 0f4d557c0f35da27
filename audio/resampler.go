// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/wavescrub/utils"
)

// Resampler streams src at another sample rate using Catmull-Rom cubic
// interpolation over a four frame window. Channel count is preserved.
// When downsampling a one-pole low-pass filter smooths the input first.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0..3] hold frames t-1, t0, t+1, t+2
	window [4][]float32
	filled [4]bool
	primed bool
	eof    bool

	// fractional position between window[1] and window[2]
	pos float64

	frame []float32

	lowpass bool
	seeded  bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		srcRate:  src.SampleRate(),
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		frame:    make([]float32, channels),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Frames estimates the output length from the source length, or -1.
func (r *Resampler) Frames() int64 {
	n := framesOf(r.src)
	if n < 0 || r.srcRate <= 0 {
		return -1
	}

	return n * int64(r.dstRate) / int64(r.srcRate)
}

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFrame reads one source frame into r.frame, filtering it when
// downsampling. ok is false when no frame was available.
func (r *Resampler) readFrame() (bool, error) {
	var (
		n   int
		err error
	)
	for range maxEmptyReads {
		n, err = r.src.ReadSamples(r.frame)
		if n > 0 || err != nil {
			break
		}
	}
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("%w", err)
	}
	if err == io.EOF {
		r.eof = true
	}
	if n < r.channels {
		return false, nil
	}

	if r.lowpass {
		if !r.seeded {
			// seed the filter with the first frame to avoid a fade-in
			copy(r.state, r.frame)
			r.seeded = true
		}
		for c := range r.channels {
			r.frame[c] = r.alpha*r.frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = r.frame[c]
		}
	}

	return true, nil
}

// prime loads the first source frames into window[1..3]. window[0] stays
// empty until the first advance.
func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.window); i++ {
		if r.eof {
			break
		}

		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		copy(r.window[i], r.frame)
		r.filled[i] = true
	}

	if !r.filled[1] {
		return io.EOF
	}

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	if r.eof {
		r.filled[3] = false
	} else {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if ok {
			copy(r.window[3], r.frame)
		}
		r.filled[3] = ok
	}

	if !r.filled[2] {
		return io.EOF
	}

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0

			if err := r.advance(); err != nil {
				if err == io.EOF {
					return written * r.channels, io.EOF
				}

				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]

		for c := range r.channels {
			y0 := r.window[1][c]
			if r.filled[0] {
				y0 = r.window[0][c]
			}

			y3 := r.window[2][c]
			if r.filled[3] {
				y3 = r.window[3][c]
			}

			out[c] = utils.CubicInterpolate(y0, r.window[1][c], r.window[2][c], y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
