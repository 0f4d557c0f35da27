// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ik5/wavescrub/internal/player"
	"github.com/ik5/wavescrub/internal/speaker"
	"github.com/ik5/wavescrub/internal/tui"
	"github.com/ik5/wavescrub/label"
	"github.com/ik5/wavescrub/scrub"
	"github.com/ik5/wavescrub/timeline"
	"github.com/ik5/wavescrub/waveform"
)

// speakerLatency is the device buffer the view opens.
const speakerLatency = 50 * time.Millisecond

type viewFlags struct {
	watch  bool
	mute   bool
	labels []float64
}

func newViewCommand(a *app) *cobra.Command {
	var f viewFlags

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Open the interactive timeline",
		Long: `Opens FILE in a terminal timeline. The wheel pans, ctrl or alt with
the wheel zooms around the pointer, dragging on the waveform scrubs and
dragging the scrollbar thumb scrolls. Space plays and pauses, the arrow
keys step frames and jump between labels.

Logs are discarded while the timeline runs unless --log-file is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(cmd.Context(), args[0], f)
		},
	}

	cmd.Flags().BoolVar(&f.watch, "watch", false, "reload when the file changes on disk")
	cmd.Flags().BoolVar(&f.mute, "mute", false, "do not open the audio device")
	cmd.Flags().Float64SliceVar(&f.labels, "label", nil, "label timestamp in seconds (repeatable)")

	return cmd
}

func (a *app) view(ctx context.Context, path string, f viewFlags) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wopts := a.cfg.WaveformOptions()

	var out scrub.Sink
	if !f.mute {
		sink, err := speaker.Open(speaker.DefaultRate, speakerLatency)
		if err != nil {
			a.log.Warn("audio unavailable, running muted", "error", err)
		} else {
			defer sink.Close()
			out = sink
			// decode straight to the device rate so neither the player
			// nor the previewer resamples
			wopts.TargetRate = sink.SampleRate()
		}
	}

	pl := player.New(out, nil)
	pl.Logger = a.log

	var prev *scrub.Previewer
	if out != nil {
		prev = scrub.NewPreviewer(out, a.cfg.ScrubOptions())
		prev.Logger = a.log
	}

	topts := a.cfg.TimelineOptions()
	topts.Logger = a.log
	topts.OnLoad = func(res *waveform.Result) { pl.Load(res.PCM) }

	o := timeline.New(pl, a.extractor(wopts), prev, topts)
	defer o.Close()
	pl.OnEvents(o.MediaPlayed, o.MediaPaused)

	load := func(ctx context.Context) error {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		return o.LoadMedia(ctx, file)
	}

	model := tui.New(o, load, tui.Options{
		Title:   filepath.Base(path),
		Labels:  label.FromTimestamps(f.labels),
		Logger:  a.log,
		Context: ctx,
	})

	prog := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if f.watch {
		if err := watchFile(ctx, path, a.log, func() { prog.Send(tui.ReloadMsg{}) }); err != nil {
			return err
		}
	}

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}

	return nil
}
