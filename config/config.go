// SPDX-License-Identifier: EPL-2.0

// Package config loads the timeline tunables from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ik5/wavescrub/scrub"
	"github.com/ik5/wavescrub/timeline"
	"github.com/ik5/wavescrub/viewport"
	"github.com/ik5/wavescrub/waveform"
)

var ErrInvalid = errors.New("invalid config")

// Config represents the whole configuration file.
type Config struct {
	DebounceMS int     `toml:"debounce_ms" yaml:"debounce_ms"`
	FrameRate  float64 `toml:"frame_rate" yaml:"frame_rate"`

	Zoom     ZoomConfig     `toml:"zoom" yaml:"zoom"`
	Pan      PanConfig      `toml:"pan" yaml:"pan"`
	Drag     DragConfig     `toml:"drag" yaml:"drag"`
	Scrub    ScrubConfig    `toml:"scrub" yaml:"scrub"`
	Waveform WaveformConfig `toml:"waveform" yaml:"waveform"`
}

type ZoomConfig struct {
	Min       float64 `toml:"min" yaml:"min"`
	Max       float64 `toml:"max" yaml:"max"`
	WheelStep float64 `toml:"wheel_step" yaml:"wheel_step"`
}

type PanConfig struct {
	WheelSensitivity float64 `toml:"wheel_sensitivity" yaml:"wheel_sensitivity"`
	FollowEdge       float64 `toml:"follow_edge" yaml:"follow_edge"`
	FollowLeft       float64 `toml:"follow_left" yaml:"follow_left"`
	FollowRight      float64 `toml:"follow_right" yaml:"follow_right"`
	UpdateThreshold  float64 `toml:"update_threshold" yaml:"update_threshold"`
	EndTolerance     float64 `toml:"end_tolerance" yaml:"end_tolerance"`
}

// DragConfig positions the playhead when a drag reaches an edge.
type DragConfig struct {
	EdgeBuffer float64 `toml:"edge_buffer" yaml:"edge_buffer"`
	Left       float64 `toml:"left" yaml:"left"`
	Right      float64 `toml:"right" yaml:"right"`
}

type ScrubConfig struct {
	SliceMS         int     `toml:"slice_ms" yaml:"slice_ms"`
	Gain            float64 `toml:"gain" yaml:"gain"`
	MoveThreshold   float64 `toml:"move_threshold" yaml:"move_threshold"`
	SegmentWindowMS int     `toml:"segment_window_ms" yaml:"segment_window_ms"`
}

type WaveformConfig struct {
	BaseBuckets   int  `toml:"base_buckets" yaml:"base_buckets"`
	BucketsPer10s int  `toml:"buckets_per_10s" yaml:"buckets_per_10s"`
	MaxBuckets    int  `toml:"max_buckets" yaml:"max_buckets"`
	Mixdown       bool `toml:"mixdown" yaml:"mixdown"`
	TargetRate    int  `toml:"target_rate" yaml:"target_rate"`
}

// Default returns the configuration the timeline ships with.
func Default() *Config {
	p := viewport.DefaultParams()
	s := scrub.DefaultOptions()
	w := waveform.DefaultOptions()

	return &Config{
		DebounceMS: 1000,
		FrameRate:  30,
		Zoom: ZoomConfig{
			Min:       p.MinZoom,
			Max:       p.MaxZoom,
			WheelStep: p.WheelZoomStep,
		},
		Pan: PanConfig{
			WheelSensitivity: p.WheelPanSensitivity,
			FollowEdge:       p.FollowEdge,
			FollowLeft:       p.FollowLeft,
			FollowRight:      p.FollowRight,
			UpdateThreshold:  p.UpdateThreshold,
			EndTolerance:     p.EndTolerance,
		},
		Drag: DragConfig{
			EdgeBuffer: p.DragEdge,
			Left:       p.DragLeft,
			Right:      p.DragRight,
		},
		Scrub: ScrubConfig{
			SliceMS:         int(s.Slice / time.Millisecond),
			Gain:            s.Gain,
			MoveThreshold:   0.01,
			SegmentWindowMS: 150,
		},
		Waveform: WaveformConfig{
			BaseBuckets:   w.BaseBuckets,
			BucketsPer10s: w.BucketsPer10s,
			MaxBuckets:    w.MaxBuckets,
		},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml, or .yaml/.yml. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown config format %q", ErrInvalid, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the engine cannot work with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.DebounceMS > 0, "debounce_ms must be positive, got %d", c.DebounceMS)
	check(c.FrameRate > 0, "frame_rate must be positive, got %v", c.FrameRate)

	check(c.Zoom.Min >= 1, "zoom.min must be at least 1, got %v", c.Zoom.Min)
	check(c.Zoom.Max >= c.Zoom.Min, "zoom.max %v below zoom.min %v", c.Zoom.Max, c.Zoom.Min)
	check(c.Zoom.WheelStep > 0 && c.Zoom.WheelStep < 1, "zoom.wheel_step must be in (0, 1), got %v", c.Zoom.WheelStep)

	check(c.Pan.WheelSensitivity > 0, "pan.wheel_sensitivity must be positive, got %v", c.Pan.WheelSensitivity)
	check(ratio(c.Pan.FollowEdge) && c.Pan.FollowEdge < 0.5, "pan.follow_edge must be in [0, 0.5), got %v", c.Pan.FollowEdge)
	check(ratio(c.Pan.FollowLeft), "pan.follow_left must be in [0, 1], got %v", c.Pan.FollowLeft)
	check(ratio(c.Pan.FollowRight), "pan.follow_right must be in [0, 1], got %v", c.Pan.FollowRight)
	check(c.Pan.UpdateThreshold >= 0, "pan.update_threshold must not be negative")
	check(c.Pan.EndTolerance >= 0, "pan.end_tolerance must not be negative")

	check(ratio(c.Drag.EdgeBuffer) && c.Drag.EdgeBuffer < 0.5, "drag.edge_buffer must be in [0, 0.5), got %v", c.Drag.EdgeBuffer)
	check(ratio(c.Drag.Left), "drag.left must be in [0, 1], got %v", c.Drag.Left)
	check(ratio(c.Drag.Right), "drag.right must be in [0, 1], got %v", c.Drag.Right)

	check(c.Scrub.SliceMS > 0, "scrub.slice_ms must be positive, got %d", c.Scrub.SliceMS)
	check(c.Scrub.Gain >= 0 && c.Scrub.Gain <= 1, "scrub.gain must be in [0, 1], got %v", c.Scrub.Gain)
	check(c.Scrub.MoveThreshold > 0, "scrub.move_threshold must be positive, got %v", c.Scrub.MoveThreshold)
	check(c.Scrub.SegmentWindowMS > 0, "scrub.segment_window_ms must be positive, got %d", c.Scrub.SegmentWindowMS)

	check(c.Waveform.BaseBuckets > 0, "waveform.base_buckets must be positive, got %d", c.Waveform.BaseBuckets)
	check(c.Waveform.BucketsPer10s >= 0, "waveform.buckets_per_10s must not be negative")
	check(c.Waveform.MaxBuckets >= c.Waveform.BaseBuckets, "waveform.max_buckets %d below base_buckets %d",
		c.Waveform.MaxBuckets, c.Waveform.BaseBuckets)
	check(c.Waveform.TargetRate >= 0, "waveform.target_rate must not be negative")

	return errors.Join(errs...)
}

func ratio(x float64) bool { return x >= 0 && x <= 1 }

// Params returns the viewport tunables.
func (c *Config) Params() viewport.Params {
	return viewport.Params{
		MinZoom:             c.Zoom.Min,
		MaxZoom:             c.Zoom.Max,
		WheelZoomStep:       c.Zoom.WheelStep,
		WheelPanSensitivity: c.Pan.WheelSensitivity,
		FollowEdge:          c.Pan.FollowEdge,
		FollowLeft:          c.Pan.FollowLeft,
		FollowRight:         c.Pan.FollowRight,
		DragEdge:            c.Drag.EdgeBuffer,
		DragLeft:            c.Drag.Left,
		DragRight:           c.Drag.Right,
		UpdateThreshold:     c.Pan.UpdateThreshold,
		EndTolerance:        c.Pan.EndTolerance,
	}
}

func (c *Config) ScrubOptions() scrub.Options {
	return scrub.Options{
		Slice: time.Duration(c.Scrub.SliceMS) * time.Millisecond,
		Gain:  c.Scrub.Gain,
	}
}

func (c *Config) WaveformOptions() waveform.Options {
	return waveform.Options{
		BaseBuckets:   c.Waveform.BaseBuckets,
		BucketsPer10s: c.Waveform.BucketsPer10s,
		MaxBuckets:    c.Waveform.MaxBuckets,
		Mixdown:       c.Waveform.Mixdown,
		TargetRate:    c.Waveform.TargetRate,
	}
}

// SegmentWindow is the length of exported preview segments.
func (c *Config) SegmentWindow() time.Duration {
	return time.Duration(c.Scrub.SegmentWindowMS) * time.Millisecond
}

// TimelineOptions builds orchestrator options; clock and logger are left
// for the caller.
func (c *Config) TimelineOptions() timeline.Options {
	return timeline.Options{
		Params:             c.Params(),
		Debounce:           time.Duration(c.DebounceMS) * time.Millisecond,
		ScrubMoveThreshold: c.Scrub.MoveThreshold,
		FrameRate:          c.FrameRate,
	}
}
