// SPDX-License-Identifier: EPL-2.0

// Package viewport models the visible time window of a timeline.
//
// A Viewport is a value: every operation returns a new Viewport and
// reports whether anything changed. All start times pass through Clamp,
// so every Viewport produced here satisfies
//
//	0 <= Start <= max(0, Duration-Displayed())
//
// with Start exactly 0 whenever the whole recording fits in the view.
// A zero Duration always yields the reset viewport {Zoom: 1, Start: 0}.
package viewport
