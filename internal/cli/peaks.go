// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ik5/wavescrub/waveform"
)

// sparkWidth is the width of the terminal summary's waveform line.
const sparkWidth = 64

type peaksReport struct {
	File       string    `json:"file"`
	Format     string    `json:"format"`
	Duration   float64   `json:"duration"`
	SampleRate int       `json:"sample_rate"`
	Buckets    int       `json:"buckets"`
	Peaks      []float64 `json:"peaks"`
}

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	sparkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
)

func newPeaksCommand(a *app) *cobra.Command {
	var (
		width  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "peaks FILE",
		Short: "Print the normalized waveform of a recording",
		Long: `Decodes FILE and prints its RMS waveform normalized to the loudest
bucket. On a terminal a short summary is shown; otherwise, or with --json,
the full bucket list is written as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := a.peaks(cmd, args[0], width)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON || !isTerminal(out) {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(rep)
			}

			_, err = io.WriteString(out, summary(rep))

			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "resample the peaks to this many columns (0 keeps every bucket)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON even on a terminal")

	return cmd
}

func (a *app) peaks(cmd *cobra.Command, path string, width int) (*peaksReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := a.extractor(a.cfg.WaveformOptions()).Extract(cmd.Context(), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	peaks := []float64(res.Buffer)
	if width > 0 {
		peaks = res.Buffer.Columns(width)
	}

	return &peaksReport{
		File:       filepath.Base(path),
		Format:     res.Format,
		Duration:   res.Duration,
		SampleRate: res.PCM.SampleRate,
		Buckets:    len(res.Buffer),
		Peaks:      peaks,
	}, nil
}

func summary(rep *peaksReport) string {
	var b strings.Builder

	row := func(k, v string) {
		b.WriteString(keyStyle.Render(fmt.Sprintf("%-9s", k)))
		b.WriteString(valueStyle.Render(v))
		b.WriteByte('\n')
	}

	row("file", rep.File)
	row("format", rep.Format)
	row("duration", fmt.Sprintf("%.3fs", rep.Duration))
	row("rate", fmt.Sprintf("%d Hz", rep.SampleRate))
	row("buckets", fmt.Sprint(rep.Buckets))

	b.WriteString(sparkStyle.Render(sparkline(waveform.Buffer(rep.Peaks).Columns(sparkWidth))))
	b.WriteByte('\n')

	return b.String()
}

func sparkline(levels []float64) string {
	blocks := []rune(" ▁▂▃▄▅▆▇█")
	out := make([]rune, len(levels))
	for i, v := range levels {
		out[i] = blocks[min(max(int(math.Round(v*8)), 0), 8)]
	}

	return string(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
