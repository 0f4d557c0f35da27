// SPDX-License-Identifier: EPL-2.0

package viewport

// Params holds the tunables of every viewport transition. Ratios are
// fractions of the displayed duration; thresholds are seconds.
type Params struct {
	MinZoom       float64
	MaxZoom       float64
	WheelZoomStep float64 // zoom multiplier change per wheel notch

	WheelPanSensitivity float64 // share of the view a full-width swipe pans

	// playback auto-follow
	FollowEdge  float64
	FollowLeft  float64
	FollowRight float64

	// playhead drag auto-pan
	DragEdge  float64
	DragLeft  float64
	DragRight float64

	// UpdateThreshold suppresses start moves at or below it.
	UpdateThreshold float64
	// EndTolerance stops right-edge follow once the view reaches the end.
	EndTolerance float64
}

// DefaultParams returns the tunables the timeline ships with.
func DefaultParams() Params {
	return Params{
		MinZoom:             1,
		MaxZoom:             20,
		WheelZoomStep:       0.2,
		WheelPanSensitivity: 0.6,
		FollowEdge:          0.2,
		FollowLeft:          0.3,
		FollowRight:         0.7,
		DragEdge:            0.1,
		DragLeft:            0.2,
		DragRight:           0.8,
		UpdateThreshold:     0.001,
		EndTolerance:        0.01,
	}
}

func (p Params) clampZoom(z float64) float64 {
	return min(max(z, p.MinZoom), p.MaxZoom)
}
