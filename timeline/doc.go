// SPDX-License-Identifier: EPL-2.0

// Package timeline composes the viewport, debouncer, waveform and scrub
// packages around an external media player.
//
// The Orchestrator owns the playback cursor and the committed viewport.
// Hosts feed it input events (wheel, slider, scrollbar, pointer drags,
// keys) and call Tick once per frame; Tick polls the player and lets the
// view follow playback unless the user is mid-gesture or seeking.
//
// Every user-driven view change pings the debouncer first, so automatic
// follow never fights a gesture in progress. Follow itself never pings.
package timeline
