// SPDX-License-Identifier: EPL-2.0

package timelinetest

import "sync"

// FakeMedia is a scripted media element. It starts paused at time 0.
// OnPlay and OnPause, when set, run synchronously on state changes the
// way a player emits play and pause events.
type FakeMedia struct {
	mu      sync.Mutex
	paused  bool
	time    float64
	seeks   []float64
	plays   int
	pauses  int
	playErr error

	OnPlay  func()
	OnPause func()
}

func NewFakeMedia() *FakeMedia { return &FakeMedia{paused: true} }

// FailPlay makes the next Play calls return err. nil clears it.
func (m *FakeMedia) FailPlay(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.playErr = err
}

func (m *FakeMedia) Play() error {
	m.mu.Lock()
	if m.playErr != nil {
		err := m.playErr
		m.mu.Unlock()

		return err
	}
	m.plays++
	wasPaused := m.paused
	m.paused = false
	hook := m.OnPlay
	m.mu.Unlock()

	if wasPaused && hook != nil {
		hook()
	}

	return nil
}

func (m *FakeMedia) Pause() {
	m.mu.Lock()
	m.pauses++
	wasPaused := m.paused
	m.paused = true
	hook := m.OnPause
	m.mu.Unlock()

	if !wasPaused && hook != nil {
		hook()
	}
}

func (m *FakeMedia) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.paused
}

func (m *FakeMedia) CurrentTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.time
}

func (m *FakeMedia) SetCurrentTime(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.time = t
	m.seeks = append(m.seeks, t)
}

// Advance moves the playback position as if the media played for dt
// seconds. It does nothing while paused.
func (m *FakeMedia) Advance(dt float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.paused {
		m.time += dt
	}
}

// Seeks returns every time passed to SetCurrentTime.
func (m *FakeMedia) Seeks() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]float64(nil), m.seeks...)
}

func (m *FakeMedia) Plays() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.plays
}

func (m *FakeMedia) Pauses() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pauses
}
