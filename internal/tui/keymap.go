// SPDX-License-Identifier: EPL-2.0

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the timeline key bindings.
type KeyMap struct {
	PlayPause key.Binding
	StepBack  key.Binding
	StepFwd   key.Binding
	PrevLabel key.Binding
	NextLabel key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	Center    key.Binding
	AddLabel  key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		StepBack:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "frame back")),
		StepFwd:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "frame fwd")),
		PrevLabel: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev label")),
		NextLabel: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next label")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Center:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "center")),
		AddLabel:  key.NewBinding(key.WithKeys("m", "L"), key.WithHelp("m", "add label")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.StepBack, k.StepFwd, k.PrevLabel, k.NextLabel, k.AddLabel, k.ZoomIn, k.ZoomOut, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.StepBack, k.StepFwd},
		{k.PrevLabel, k.NextLabel, k.AddLabel},
		{k.Center},
		{k.ZoomIn, k.ZoomOut, k.Quit},
	}
}
