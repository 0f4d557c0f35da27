// SPDX-License-Identifier: EPL-2.0

// Package waveform turns a media stream into the normalized energy profile
// drawn under the timeline.
//
// Extract decodes one channel (or a mono mixdown), splits it into buckets
// whose count grows with the duration up to a cap, and stores the RMS of
// each bucket divided by the loudest one. Silent input yields all zeros.
// The decoded mono PCM is returned as well so scrub previews can play
// from it without decoding again.
package waveform
