// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF through github.com/go-audio/aiff.
//
// The go-audio decoder needs an io.ReadSeeker; any other reader is read into
// memory first. The source reports NumSampleFrames as its length.
package aiff
