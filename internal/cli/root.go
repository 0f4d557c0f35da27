// SPDX-License-Identifier: EPL-2.0

// Package cli wires the wavescrub commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ik5/wavescrub/config"
	"github.com/ik5/wavescrub/waveform"
)

// Version is set at build time.
var Version = "dev"

// app carries what the persistent flags resolve to.
type app struct {
	cfgFile  string
	logLevel string
	logFile  string

	cfg     *config.Config
	log     *slog.Logger
	closers []io.Closer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wavescrub",
		Short: "Inspect and scrub through audio recordings",
		Long: `wavescrub decodes WAV, AIFF, MP3 and Ogg Vorbis files into a
waveform overview and lets you zoom, pan and scrub through them.

  wavescrub view take.wav --label 12.5 --label 40   # interactive timeline
  wavescrub peaks take.wav --width 80               # waveform peaks
  wavescrub segment take.wav --at 12.5 -o cut.wav   # export a scrub segment`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(
		newPeaksCommand(a),
		newSegmentCommand(a),
		newViewCommand(a),
	)

	return root
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = cmd.ErrOrStderr()
	switch {
	case a.logFile != "":
		f, err := os.OpenFile(a.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		a.closers = append(a.closers, f)
		w = f
	case cmd.Name() == "view":
		// the terminal belongs to the timeline while it runs
		w = io.Discard
	}

	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.log)

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log.Debug("configuration loaded", "path", a.cfgFile)

	return nil
}

func (a *app) teardown() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil

	return firstErr
}

// extractor returns a decoder configured from the loaded config.
func (a *app) extractor(opts waveform.Options) *waveform.Extractor {
	return &waveform.Extractor{Options: &opts, Logger: a.log}
}
