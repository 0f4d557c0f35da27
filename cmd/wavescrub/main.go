// SPDX-License-Identifier: EPL-2.0

// Command wavescrub is a terminal waveform timeline.
package main

import (
	"os"

	"github.com/ik5/wavescrub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
