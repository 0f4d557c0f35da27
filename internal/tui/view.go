// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/wavescrub/label"
)

// blockChars holds the eight fill levels of one cell, bottom to top.
const blockChars = " ▁▂▃▄▅▆▇█"

// chrome is the number of rows besides the waveform: header, markers,
// ruler, scrollbar and help.
const chrome = 5

type layout struct {
	waveTop   int
	waveRows  int
	markerRow int
	rulerRow  int
	scrollRow int
}

func (m Model) layout() layout {
	rows := max(m.height-chrome, 1)

	return layout{
		waveTop:   1,
		waveRows:  rows,
		markerRow: 1 + rows,
		rulerRow:  2 + rows,
		scrollRow: 3 + rows,
	}
}

func (m Model) View() string {
	if m.width <= 0 {
		return ""
	}

	lay := m.layout()

	rows := []string{m.header()}
	rows = append(rows, m.waveform(lay.waveRows)...)
	rows = append(rows,
		m.markers(),
		m.ruler(),
		m.scrollbar(),
		m.help.View(m.keys),
	)

	return strings.Join(rows, "\n")
}

func (m Model) header() string {
	st := m.state

	var status string
	switch {
	case st.Loading:
		status = statusStyle.Render("loading…")
	case !st.Loaded:
		status = statusStyle.Render("no media")
	case st.Seeking:
		status = playheadStyle.Render("seeking")
	case st.Playing:
		status = playingStyle.Render("▶ playing")
	default:
		status = statusStyle.Render("❚❚ paused")
	}

	parts := []string{titleStyle.Render(m.title), status}
	if st.Loaded {
		parts = append(parts,
			statusStyle.Render(fmt.Sprintf("%s / %s", formatTime(st.CurrentTime), formatTime(st.Viewport.Duration))),
			statusStyle.Render(fmt.Sprintf("%.1fx %s", st.Viewport.Zoom, st.Format)),
		)
	}
	if m.err != nil {
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}

	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, "  "))
}

// playheadColumn is the column of the cursor, or -1 when off screen.
func (m Model) playheadColumn() int {
	vp := m.state.Viewport
	if !m.state.Loaded || !vp.Contains(m.state.CurrentTime) {
		return -1
	}

	return min(int(vp.RatioOf(m.state.CurrentTime)*float64(m.width)), m.width-1)
}

// waveform renders the visible buckets as rows of block characters, top
// row first, with the playhead column highlighted.
func (m Model) waveform(rows int) []string {
	visible, _ := m.o.Waveform().Visible(m.state.Viewport)
	cols := visible.Columns(m.width)

	levels := make([]int, m.width)
	for i, v := range cols {
		levels[i] = int(math.Round(v * float64(rows*8)))
	}

	head := m.playheadColumn()
	blocks := []rune(blockChars)
	out := make([]string, rows)

	for row := range rows {
		base := (rows - 1 - row) * 8
		line := make([]rune, m.width)

		for c, level := range levels {
			fill := min(max(level-base, 0), 8)
			line[c] = blocks[fill]
			if c == head && fill == 0 {
				line[c] = '│'
			}
		}

		out[row] = renderWithPlayhead(line, head)
	}

	return out
}

func renderWithPlayhead(line []rune, head int) string {
	if head < 0 || head >= len(line) {
		return waveStyle.Render(string(line))
	}

	return waveStyle.Render(string(line[:head])) +
		playheadStyle.Render(string(line[head])) +
		waveStyle.Render(string(line[head+1:]))
}

func (m Model) markers() string {
	line := []rune(strings.Repeat(" ", m.width))
	for _, mk := range label.Visible(m.labels, m.state.Viewport) {
		c := min(int(mk.Ratio*float64(m.width)), m.width-1)
		line[c] = '▼'
	}

	return markerStyle.Render(string(line))
}

func (m Model) ruler() string {
	vp := m.state.Viewport
	if !m.state.Loaded {
		return rulerStyle.Render(strings.Repeat("·", m.width))
	}

	left, right := formatTime(vp.Start), formatTime(vp.End())
	gap := m.width - len(left) - len(right)
	if gap < 1 {
		return rulerStyle.Render(left)
	}

	return rulerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) scrollbar() string {
	offset, width := m.state.Viewport.Thumb()
	if !m.state.Loaded || !m.state.Viewport.Scrollable() {
		return trackStyle.Render(strings.Repeat("─", m.width))
	}

	lo := min(int(offset*float64(m.width)), m.width-1)
	n := min(max(int(math.Round(width*float64(m.width))), 1), m.width-lo)

	return trackStyle.Render(strings.Repeat("─", lo)) +
		thumbStyle.Render(strings.Repeat("━", n)) +
		trackStyle.Render(strings.Repeat("─", m.width-lo-n))
}

// formatTime renders seconds as m:ss.mmm.
func formatTime(t float64) string {
	if t < 0 || math.IsNaN(t) {
		t = 0
	}

	ms := int64(math.Round(t * 1000))

	return fmt.Sprintf("%d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}
