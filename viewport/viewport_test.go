// SPDX-License-Identifier: EPL-2.0

package viewport

import (
	"math"
	"math/rand/v2"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate float64
		total     float64
		displayed float64
		want      float64
	}{
		{name: "inside range", candidate: 10, total: 100, displayed: 50, want: 10},
		{name: "negative", candidate: -5, total: 100, displayed: 50, want: 0},
		{name: "past end", candidate: 80, total: 100, displayed: 50, want: 50},
		{name: "full view", candidate: 10, total: 100, displayed: 100, want: 0},
		{name: "wider than total", candidate: 10, total: 100, displayed: 120, want: 0},
		{name: "empty recording", candidate: 10, total: 0, displayed: 0, want: 0},
		{name: "NaN candidate", candidate: math.NaN(), total: 100, displayed: 50, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Clamp(tt.candidate, tt.total, tt.displayed)
			if got != tt.want {
				t.Errorf("Clamp() = %v, want %v", got, tt.want)
			}
			if again := Clamp(got, tt.total, tt.displayed); again != got {
				t.Errorf("Clamp() not idempotent: %v then %v", got, again)
			}
		})
	}
}

func TestViewport_Displayed(t *testing.T) {
	t.Parallel()

	if d := New(0).Displayed(); d != 0 {
		t.Errorf("empty Displayed() = %v, want 0", d)
	}
	if d := (Viewport{Duration: 100, Zoom: 4}).Displayed(); d != 25 {
		t.Errorf("Displayed() = %v, want 25", d)
	}
	if v := New(math.NaN()); v.Duration != 0 || v.Zoom != 1 {
		t.Errorf("New(NaN) = %+v, want reset", v)
	}
}

func TestViewport_ThumbAndRatio(t *testing.T) {
	t.Parallel()

	v := Viewport{Duration: 100, Zoom: 4, Start: 50}

	offset, width := v.Thumb()
	if offset != 0.5 || width != 0.25 {
		t.Errorf("Thumb() = %v, %v; want 0.5, 0.25", offset, width)
	}
	if r := v.RatioOf(56.25); r != 0.25 {
		t.Errorf("RatioOf() = %v, want 0.25", r)
	}
	if got := v.TimeAt(0.25); got != 56.25 {
		t.Errorf("TimeAt() = %v, want 56.25", got)
	}
	if !v.Scrollable() || New(10).Scrollable() {
		t.Error("Scrollable() mismatch")
	}
}

func TestZoomAt_PointerAnchor(t *testing.T) {
	t.Parallel()

	v := New(100).ZoomAt(2, 0.5)
	if v.Start != 25 || v.Zoom != 2 {
		t.Fatalf("ZoomAt(2, 0.5) = %+v, want Start 25 Zoom 2", v)
	}

	// the anchored time stays under the pointer
	w := Viewport{Duration: 100, Zoom: 2, Start: 20}
	anchor := w.TimeAt(0.3)
	z := w.ZoomAt(5, 0.3)
	if !near(z.TimeAt(0.3), anchor) {
		t.Errorf("time under pointer moved from %v to %v", anchor, z.TimeAt(0.3))
	}
}

func TestZoomWheel(t *testing.T) {
	t.Parallel()

	p := DefaultParams()

	tests := []struct {
		name      string
		v         Viewport
		deltaY    float64
		ratio     float64
		wantZoom  float64
		wantStart float64
		changed   bool
	}{
		{
			name: "zoom in at center", v: New(100), deltaY: -1, ratio: 0.5,
			wantZoom: 1.2, wantStart: 50 - 100/1.2/2, changed: true,
		},
		{
			name: "zoom in at left edge", v: New(100), deltaY: -3, ratio: 0,
			wantZoom: 1.2, wantStart: 0, changed: true,
		},
		{
			name: "zoom out", v: Viewport{Duration: 100, Zoom: 2, Start: 25}, deltaY: 1, ratio: 0.5,
			wantZoom: 1.6, wantStart: 50 - 100/1.6/2, changed: true,
		},
		{
			name: "zoom out clamps to min", v: Viewport{Duration: 100, Zoom: 1.1, Start: 5}, deltaY: 1, ratio: 0.5,
			wantZoom: 1, wantStart: 0, changed: true,
		},
		{
			name: "zoom in clamps to max", v: Viewport{Duration: 100, Zoom: 19}, deltaY: -1, ratio: 0,
			wantZoom: 20, wantStart: 0, changed: true,
		},
		{
			name: "at min", v: New(100), deltaY: 1, ratio: 0.5,
			wantZoom: 1, wantStart: 0,
		},
		{
			name: "zero delta", v: Viewport{Duration: 100, Zoom: 2, Start: 10}, deltaY: 0, ratio: 0.5,
			wantZoom: 2, wantStart: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := tt.v.ZoomWheel(tt.deltaY, tt.ratio, p)
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if !near(got.Zoom, tt.wantZoom) || !near(got.Start, tt.wantStart) {
				t.Errorf("ZoomWheel() = %+v, want Zoom %v Start %v", got, tt.wantZoom, tt.wantStart)
			}
			if !got.Valid() {
				t.Errorf("ZoomWheel() = %+v is not valid", got)
			}
		})
	}
}

func TestZoomSlider(t *testing.T) {
	t.Parallel()

	p := DefaultParams()

	v, changed := Viewport{Duration: 100, Zoom: 2, Start: 25}.ZoomSlider(4, p)
	if !changed || v.Start != 37.5 {
		t.Errorf("center anchored zoom = %+v, want Start 37.5", v)
	}

	v, changed = Viewport{Duration: 100, Zoom: 4, Start: 60}.ZoomSlider(1, p)
	if !changed || v.Start != 0 || v.Zoom != 1 {
		t.Errorf("zoom to min = %+v, want reset start", v)
	}

	same := Viewport{Duration: 100, Zoom: 3, Start: 10}
	if v, changed = same.ZoomSlider(3, p); changed || v != same {
		t.Errorf("equal zoom changed the view: %+v", v)
	}

	if v, _ = New(0).ZoomSlider(5, p); v != New(0) {
		t.Errorf("empty recording zoom = %+v, want reset", v)
	}
}

func TestZoom_RoundTripKeepsDisplayed(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	start := Viewport{Duration: 360, Zoom: 2, Start: 40}

	in, _ := start.ZoomSlider(8, p)
	out, _ := in.ZoomSlider(2, p)
	if !near(out.Displayed(), start.Displayed()) {
		t.Errorf("slider round trip Displayed() = %v, want %v", out.Displayed(), start.Displayed())
	}

	wheelIn := start.ZoomAt(6, 0.8)
	wheelOut := wheelIn.ZoomAt(2, 0.8)
	if !near(wheelOut.Displayed(), start.Displayed()) {
		t.Errorf("wheel round trip Displayed() = %v, want %v", wheelOut.Displayed(), start.Displayed())
	}
}

func TestPanWheel(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	v := Viewport{Duration: 100, Zoom: 2, Start: 10} // 50 s shown

	tests := []struct {
		name    string
		dx, dy  float64
		want    float64
		changed bool
	}{
		{name: "horizontal", dx: 100, want: 13, changed: true},
		{name: "vertical dominant", dx: 10, dy: -200, want: 4, changed: true},
		{name: "clamps at start", dx: -10000, want: 0, changed: true},
		{name: "clamps at end", dx: 10000, want: 50, changed: true},
		{name: "below threshold", dx: 0.01, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := v.PanWheel(tt.dx, tt.dy, 1000, p)
			if changed != tt.changed || !near(got.Start, tt.want) {
				t.Errorf("PanWheel() = %v, %v; want %v, %v", got.Start, changed, tt.want, tt.changed)
			}
		})
	}

	if _, changed := New(100).PanWheel(500, 0, 1000, p); changed {
		t.Error("full view panned")
	}
	if _, changed := v.PanWheel(500, 0, 0, p); changed {
		t.Error("zero width panned")
	}
}

func TestScrollbar(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	v := Viewport{Duration: 100, Zoom: 4}

	got, changed := v.TrackClick(0.5, p)
	if !changed || got.Start != 37.5 {
		t.Errorf("TrackClick(0.5) = %+v, want Start 37.5", got)
	}

	got, _ = v.TrackClick(0.99, p)
	if got.Start != 75 {
		t.Errorf("TrackClick(0.99) = %+v, want Start 75", got)
	}

	got, _ = v.ScrollTo(-3, p)
	if got.Start != 0 {
		t.Errorf("ScrollTo(-3) = %+v, want Start 0", got)
	}
}

func TestCenterOn(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	v := Viewport{Duration: 100, Zoom: 4}

	tests := []struct {
		target float64
		want   float64
	}{
		{target: 50, want: 37.5},
		{target: 90, want: 75},
		{target: 2, want: 0},
		{target: 250, want: 75},
	}

	for _, tt := range tests {
		got, _ := v.CenterOn(tt.target, p)
		if got.Start != tt.want {
			t.Errorf("CenterOn(%v) = %v, want %v", tt.target, got.Start, tt.want)
		}
	}
}

func TestFollow(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	mid := Viewport{Duration: 100, Zoom: 4, Start: 25} // shows 25..50

	tests := []struct {
		name    string
		v       Viewport
		t       float64
		want    float64
		changed bool
	}{
		{name: "right edge", v: mid, t: 48, want: 48 - 25*0.7, changed: true},
		{name: "left edge", v: mid, t: 27, want: 27 - 25*0.3, changed: true},
		{name: "middle", v: mid, t: 35, want: 25},
		{name: "left edge at start", v: Viewport{Duration: 100, Zoom: 4}, t: 1, want: 0},
		{name: "right edge at end", v: Viewport{Duration: 100, Zoom: 4, Start: 75}, t: 99, want: 75},
		{name: "full view", v: New(100), t: 99, want: 0},
		{name: "jump past view", v: mid, t: 90, want: 90 - 25*0.7, changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := tt.v.Follow(tt.t, p)
			if changed != tt.changed || !near(got.Start, tt.want) {
				t.Errorf("Follow(%v) = %v, %v; want %v, %v", tt.t, got.Start, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestDragFollow(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	mid := Viewport{Duration: 60, Zoom: 3, Start: 20} // shows 20..40

	tests := []struct {
		name    string
		v       Viewport
		t       float64
		want    float64
		changed bool
	}{
		{name: "full view near end", v: New(60), t: 58, want: 0},
		{name: "right edge", v: mid, t: 39, want: 23, changed: true},
		{name: "left edge", v: mid, t: 21, want: 17, changed: true},
		{name: "middle", v: mid, t: 30, want: 20},
		{name: "clamped at end", v: Viewport{Duration: 60, Zoom: 3, Start: 40}, t: 59.5, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := tt.v.DragFollow(tt.t, p)
			if changed != tt.changed || !near(got.Start, tt.want) {
				t.Errorf("DragFollow(%v) = %v, %v; want %v, %v", tt.t, got.Start, changed, tt.want, tt.changed)
			}
			if got.End() > got.Duration+eps {
				t.Errorf("view end %v past duration %v", got.End(), got.Duration)
			}
		})
	}
}

func TestSeekTarget(t *testing.T) {
	t.Parallel()

	p := DefaultParams()

	v, tm := New(60).SeekTarget(58.0/60, p)
	if v.Start != 0 || !near(tm, 58) {
		t.Errorf("full view seek = %+v, %v; want Start 0, 58", v, tm)
	}

	v, tm = Viewport{Duration: 60, Zoom: 3, Start: 20}.SeekTarget(0.95, p)
	if !near(v.Start, 23) || !near(tm, 42) {
		t.Errorf("edge seek = %+v, %v; want Start 23, 42", v, tm)
	}

	v, tm = Viewport{Duration: 60, Zoom: 3, Start: 40}.SeekTarget(1.5, p)
	if v.Start != 40 || tm != 60 {
		t.Errorf("seek past end = %+v, %v; want Start 40, 60", v, tm)
	}
}

func TestEmptyRecordingResets(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	stale := Viewport{Zoom: 3, Start: 5}
	reset := New(0)

	steps := map[string]func() (Viewport, bool){
		"ZoomSlider": func() (Viewport, bool) { return stale.ZoomSlider(2, p) },
		"ZoomWheel":  func() (Viewport, bool) { return stale.ZoomWheel(-1, 0.5, p) },
		"ScrollTo":   func() (Viewport, bool) { return stale.ScrollTo(3, p) },
		"TrackClick": func() (Viewport, bool) { return stale.TrackClick(0.5, p) },
	}

	for name, step := range steps {
		if got, _ := step(); got != reset {
			t.Errorf("%s on empty recording = %+v, want %+v", name, got, reset)
		}
	}

	for _, ratio := range []float64{0, 0.5, 1} {
		v, tm := reset.SeekTarget(ratio, p)
		if v != reset || tm != 0 || math.IsNaN(tm) {
			t.Errorf("SeekTarget(%v) on empty = %+v, %v", ratio, v, tm)
		}
	}
}

// Every transition keeps the start invariant, whatever the input sequence.
func TestInvariantHoldsUnderRandomGestures(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	rng := rand.New(rand.NewPCG(7, 11))

	for range 200 {
		v := New(rng.Float64() * 7200)

		for range 100 {
			switch rng.IntN(8) {
			case 0:
				v, _ = v.ZoomSlider(1+rng.Float64()*25, p)
			case 1:
				v, _ = v.ZoomWheel(rng.NormFloat64(), rng.Float64(), p)
			case 2:
				v, _ = v.PanWheel(rng.NormFloat64()*500, rng.NormFloat64()*500, 800, p)
			case 3:
				v, _ = v.ScrollTo(rng.NormFloat64()*v.Duration, p)
			case 4:
				v, _ = v.TrackClick(rng.Float64()*1.4-0.2, p)
			case 5:
				v, _ = v.CenterOn(rng.NormFloat64()*v.Duration, p)
			case 6:
				v, _ = v.Follow(rng.Float64()*v.Duration, p)
			case 7:
				v, _ = v.SeekTarget(rng.Float64()*1.4-0.2, p)
			}

			if !v.Valid() {
				t.Fatalf("invalid viewport %+v", v)
			}
		}
	}
}
