// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"log/slog"
	"time"

	"github.com/ik5/wavescrub/debounce"
	"github.com/ik5/wavescrub/viewport"
	"github.com/ik5/wavescrub/waveform"
)

// Options configure an Orchestrator. Zero fields take the defaults of
// DefaultOptions.
type Options struct {
	Params   viewport.Params
	Debounce time.Duration

	// ScrubMoveThreshold is the smallest cursor move, in seconds, that
	// restarts the scrub preview during a drag.
	ScrubMoveThreshold float64
	// FrameRate sets the step of StepFrames.
	FrameRate float64

	// OnLoad, when set, receives every installed load result. It runs
	// under the orchestrator lock and must not call back into it.
	OnLoad func(*waveform.Result)

	Clock  debounce.Clock
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Params:             viewport.DefaultParams(),
		Debounce:           debounce.DefaultDecay,
		ScrubMoveThreshold: 0.01,
		FrameRate:          30,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()

	if o.Params == (viewport.Params{}) {
		o.Params = d.Params
	}
	if o.Debounce <= 0 {
		o.Debounce = d.Debounce
	}
	if o.ScrubMoveThreshold <= 0 {
		o.ScrubMoveThreshold = d.ScrubMoveThreshold
	}
	if o.FrameRate <= 0 {
		o.FrameRate = d.FrameRate
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}
