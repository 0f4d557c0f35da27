// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var ErrNoAudio = errors.New("waveform: stream has no samples")
