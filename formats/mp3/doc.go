// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always yields interleaved stereo, so the source reports two channels
// even for mono files. The length in frames is only known when the input
// reader is seekable.
package mp3
