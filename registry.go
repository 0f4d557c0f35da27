// SPDX-License-Identifier: EPL-2.0

package wavescrub

import (
	"github.com/ik5/wavescrub/audio"
	"github.com/ik5/wavescrub/formats/aiff"
	"github.com/ik5/wavescrub/formats/mp3"
	"github.com/ik5/wavescrub/formats/vorbis"
	"github.com/ik5/wavescrub/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder registered
// under the names audio.Sniff reports.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(audio.FormatWAV, wav.Decoder{})
	reg.Register(audio.FormatAIFF, aiff.Decoder{})
	reg.Register(audio.FormatMP3, mp3.Decoder{})
	reg.Register(audio.FormatVorbis, vorbis.Decoder{})

	return reg
}
