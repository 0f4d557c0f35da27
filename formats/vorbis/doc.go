// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis through github.com/jfreymuth/oggvorbis.
//
// Samples are decoded straight into the caller's buffer; the length in
// frames is only known when the input reader is seekable.
package vorbis
