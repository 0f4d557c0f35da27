// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/wavescrub"
	"github.com/ik5/wavescrub/audio"
	"github.com/ik5/wavescrub/scrub"
)

// Result is everything the timeline needs from one media load.
type Result struct {
	Duration float64 // seconds
	Buffer   Buffer
	PCM      scrub.Clip
	Format   string // container reported by audio.Sniff
}

// Extractor decodes media into a Result. The zero value uses every
// bundled decoder and DefaultOptions.
type Extractor struct {
	Registry *audio.Registry
	Options  *Options
	Logger   *slog.Logger
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}

	return slog.Default()
}

func (e *Extractor) options() Options {
	if e.Options != nil {
		return *e.Options
	}

	return DefaultOptions()
}

// Extract decodes r. Unsupported or corrupt media fails with an error
// wrapping audio.ErrDecode; cancellation returns ctx.Err().
func (e *Extractor) Extract(ctx context.Context, r io.Reader) (*Result, error) {
	reg := e.Registry
	if reg == nil {
		reg = wavescrub.NewRegistry()
	}
	opts := e.options()

	src, format, err := reg.Open(r)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var mono audio.Source
	if opts.Mixdown {
		mono = audio.NewMonoMixer(src)
	} else {
		mono, err = audio.NewChannelPicker(src, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrDecode, err)
		}
	}

	out := mono
	if opts.TargetRate > 0 && opts.TargetRate != mono.SampleRate() {
		out = audio.NewResampler(mono, opts.TargetRate)
	}

	rate := out.SampleRate()
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %s: sample rate %d", audio.ErrDecode, format, rate)
	}

	hint := 0
	if l, ok := out.(audio.Lengther); ok && l.Frames() > 0 {
		hint = int(l.Frames())
	}

	samples, err := audio.ReadAllContext(ctx, out, hint)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %s: %w", audio.ErrDecode, format, err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s: %w", audio.ErrDecode, format, ErrNoAudio)
	}

	duration := float64(len(samples)) / float64(rate)
	n := BucketCount(duration, opts)

	e.logger().Debug("waveform extracted",
		"format", format,
		"rate", rate,
		"samples", len(samples),
		"duration", duration,
		"buckets", n,
	)

	return &Result{
		Duration: duration,
		Buffer:   Compute(samples, n),
		PCM:      scrub.Clip{Samples: samples, SampleRate: rate},
		Format:   format,
	}, nil
}
