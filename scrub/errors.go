// SPDX-License-Identifier: EPL-2.0

package scrub

import "errors"

var (
	ErrNoSink       = errors.New("scrub: no audio sink")
	ErrInvalidRate  = errors.New("scrub: invalid sample rate")
	ErrEmptySegment = errors.New("scrub: empty segment")
)
