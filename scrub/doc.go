// SPDX-License-Identifier: EPL-2.0

// Package scrub plays short quiet slices of a decoded clip while the user
// drags the playhead, and cuts preview segments around a timestamp.
//
// A Previewer never lets two slices overlap: starting a preview stops the
// previous voice first. Slice starts are clamped so a preview at the very
// end of the clip still plays a full slice ending at the last sample.
package scrub
