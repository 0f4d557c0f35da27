// SPDX-License-Identifier: EPL-2.0

// Package label navigates and places timestamp labels on the
// timeline. Storing labels belongs to the caller.
package label

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ik5/wavescrub/viewport"
)

// Label marks a point in the recording, in seconds.
type Label struct {
	ID        string
	Timestamp float64
}

// Marker is a label inside the current view at Ratio of its width.
type Marker struct {
	Label
	Ratio float64
}

// Sorted returns a copy of labels ordered by timestamp. Ties keep their
// input order.
func Sorted(labels []Label) []Label {
	out := slices.Clone(labels)
	slices.SortStableFunc(out, func(a, b Label) int {
		return cmp.Compare(a.Timestamp, b.Timestamp)
	})

	return out
}

// Next returns the first label strictly after t.
func Next(labels []Label, t float64) (Label, bool) {
	var (
		best  Label
		found bool
	)
	for _, l := range labels {
		if l.Timestamp > t && (!found || l.Timestamp < best.Timestamp) {
			best, found = l, true
		}
	}

	return best, found
}

// Prev returns the last label strictly before t.
func Prev(labels []Label, t float64) (Label, bool) {
	var (
		best  Label
		found bool
	)
	for _, l := range labels {
		if l.Timestamp < t && (!found || l.Timestamp > best.Timestamp) {
			best, found = l, true
		}
	}

	return best, found
}

// Visible returns markers for the labels inside vp, in timestamp order.
func Visible(labels []Label, vp viewport.Viewport) []Marker {
	if vp.Displayed() == 0 {
		return nil
	}

	var out []Marker
	for _, l := range Sorted(labels) {
		if vp.Contains(l.Timestamp) {
			out = append(out, Marker{Label: l, Ratio: vp.RatioOf(l.Timestamp)})
		}
	}

	return out
}

// FromTimestamps builds labels with sequential IDs, as a host does for
// labels given on the command line.
func FromTimestamps(ts []float64) []Label {
	out := make([]Label, len(ts))
	for i, t := range ts {
		out[i] = Label{ID: fmt.Sprintf("L%d", i+1), Timestamp: t}
	}

	return out
}

// Add returns a copy of labels, in timestamp order, with a new label at t.
// The new ID follows the L1, L2, ... numbering of FromTimestamps and skips
// IDs already taken.
func Add(labels []Label, t float64) ([]Label, Label) {
	taken := make(map[string]bool, len(labels))
	for _, l := range labels {
		taken[l.ID] = true
	}

	n := len(labels) + 1
	for taken[fmt.Sprintf("L%d", n)] {
		n++
	}

	l := Label{ID: fmt.Sprintf("L%d", n), Timestamp: t}

	return Sorted(append(slices.Clone(labels), l)), l
}
