// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/wavescrub/scrub"
)

func newSegmentCommand(a *app) *cobra.Command {
	var (
		at     float64
		window time.Duration
		output string
	)

	cmd := &cobra.Command{
		Use:   "segment FILE",
		Short: "Export the scrub segment around a time as WAV",
		Long: `Writes the part of FILE centered on --at as 16-bit mono WAV, the
same audio a drag across that point previews. The window defaults to
scrub.segment_window_ms from the config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}
			if window <= 0 {
				window = a.cfg.SegmentWindow()
			}

			return a.segment(cmd, args[0], at, window, output)
		},
	}

	cmd.Flags().Float64Var(&at, "at", 0, "center of the segment in seconds")
	cmd.Flags().DurationVar(&window, "window", 0, "segment length, e.g. 150ms")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output WAV file")

	return cmd
}

func (a *app) segment(cmd *cobra.Command, path string, at float64, window time.Duration, output string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	res, err := a.extractor(a.cfg.WaveformOptions()).Extract(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	seg := scrub.Segment(res.PCM, at, window.Seconds())

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := scrub.WriteSegmentWAV(out, seg); err != nil {
		return err
	}

	a.log.Info("segment written",
		"output", output,
		"at", at,
		"seconds", seg.Duration(),
	)

	return nil
}
