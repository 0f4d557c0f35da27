// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode marks input that is not a supported or intact audio container.
	// Callers treat it as recoverable.
	ErrDecode = errors.New("audio decode failed")

	ErrUnknownFormat  = errors.New("unknown container format")
	ErrInvalidChannel = errors.New("channel index out of range")
)
