// SPDX-License-Identifier: EPL-2.0

// Package wavescrub scrubs, zooms and navigates a long recording through a
// waveform timeline.
//
// The engine is split into small packages:
//   - waveform decodes media into a normalized RMS profile
//   - viewport holds the zoom/pan window and its pure transitions
//   - debounce tracks whether the user is mid-gesture
//   - scrub plays short low-gain previews while seeking
//   - timeline composes them around an external media player
//
// This package wires the decoders of formats/... into one registry so a
// host needs a single call to accept any supported container:
//
//	ex := &waveform.Extractor{Registry: wavescrub.NewRegistry()}
//	res, err := ex.Extract(ctx, f)
//
// Supported containers are PCM WAV (16, 24 and 32 bit), PCM AIFF, MP3 and
// Ogg Vorbis.
package wavescrub
