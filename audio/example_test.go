// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/wavescrub/audio"
	"github.com/ik5/wavescrub/internal/audiotest"
)

func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0)
	resampler := audio.NewResampler(source, 16000)

	samples, err := audio.ReadAll(resampler, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("samples: %d\n", len(samples))
	// Output:
	// rate: 16000 Hz
	// samples: 16000
}

func Example_channelPicker() {
	source := audiotest.NewMockSource(8000, 2, 4, func(_, ch int) float32 {
		if ch == 0 {
			return 0.5
		}
		return -0.5
	})

	left, err := audio.NewChannelPicker(source, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]float32, 4)
	n, _ := left.ReadSamples(buf)
	fmt.Println(n, buf)
	// Output:
	// 4 [0.5 0.5 0.5 0.5]
}

func Example_monoMixer() {
	source := audiotest.NewConstantSource(48000, 6, 48000, 0.5)
	mono := audio.NewMonoMixer(source)

	buf := make([]float32, 1)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("channels: %d -> %d\n", source.Channels(), mono.Channels())
	fmt.Printf("read %d sample: %.1f\n", n, buf[0])
	// Output:
	// channels: 6 -> 1
	// read 1 sample: 0.5
}

type silentDecoder struct{}

func (silentDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSilentSource(8000, 1, 10), nil
}

func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register(audio.FormatWAV, silentDecoder{})

	_, ok := registry.Get(audio.FormatWAV)
	fmt.Println("wav:", ok)

	_, ok = registry.Get(audio.FormatMP3)
	fmt.Println("mp3:", ok)
	// Output:
	// wav: true
	// mp3: false
}
