// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes RIFF/WAVE audio.
//
// Decoding goes through github.com/go-audio/wav, which walks the RIFF chunk
// list, so files carrying LIST/INFO or other chunks before "data" load fine.
// Integer PCM at 16, 24 and 32 bits is accepted; samples come out of the
// returned audio.Source as float32 in [-1, 1]. The source reports its length
// in frames, which the waveform extractor uses to size its buffers.
//
// WriteWAV16 writes mono 16-bit PCM and is used to export preview segments:
//
//	var buf bytes.Buffer
//	err := wav.WriteWAV16(&buf, 44100, pcm)
package wav
