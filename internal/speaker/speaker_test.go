// SPDX-License-Identifier: EPL-2.0

package speaker

import (
	"testing"

	"github.com/gopxl/beep/v2"
)

var _ beep.Streamer = (*voice)(nil)

func TestVoice_Stream(t *testing.T) {
	t.Parallel()

	v := newVoice([]float32{0.1, 0.2, 0.3, 0.4, 0.5})
	buf := make([][2]float64, 3)

	n, ok := v.Stream(buf)
	if n != 3 || !ok {
		t.Fatalf("Stream() = %d, %v, want 3, true", n, ok)
	}
	if buf[2][0] != float64(float32(0.3)) || buf[2][0] != buf[2][1] {
		t.Errorf("frame 2 = %v, want both channels 0.3", buf[2])
	}

	n, ok = v.Stream(buf)
	if n != 2 || !ok {
		t.Fatalf("Stream() = %d, %v, want 2, true", n, ok)
	}

	if n, ok = v.Stream(buf); n != 0 || ok {
		t.Errorf("drained Stream() = %d, %v, want 0, false", n, ok)
	}
}

func TestVoice_Stop(t *testing.T) {
	t.Parallel()

	v := newVoice(make([]float32, 100))
	if err := v.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if n, ok := v.Stream(make([][2]float64, 10)); n != 0 || ok {
		t.Errorf("stopped Stream() = %d, %v, want 0, false", n, ok)
	}
	if err := v.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}
