// SPDX-License-Identifier: EPL-2.0

package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan    = lipgloss.Color("#00FFFF")
	colorYellow  = lipgloss.Color("#FFFF00")
	colorRed     = lipgloss.Color("#FF0000")
	colorGray    = lipgloss.Color("#666666")
	colorDimGray = lipgloss.Color("#444444")
	colorMagenta = lipgloss.Color("#FF00FF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	playingStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	waveStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	playheadStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	markerStyle = lipgloss.NewStyle().
			Foreground(colorMagenta)

	rulerStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	trackStyle = lipgloss.NewStyle().
			Foreground(colorDimGray)

	thumbStyle = lipgloss.NewStyle().
			Foreground(colorCyan)
)
