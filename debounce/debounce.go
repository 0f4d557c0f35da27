// SPDX-License-Identifier: EPL-2.0

// Package debounce tracks whether the user is in the middle of a gesture.
//
// Ping marks the user as active and (re)arms a single-shot timer; the flag
// drops once the timer fires with no newer Ping. Automatic view movement
// checks Active and stays out of the way while it is true.
package debounce

import (
	"sync"
	"time"
)

// DefaultDecay is how long a gesture keeps the debouncer active.
const DefaultDecay = time.Second

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealClock is the wall clock.
var RealClock Clock = realClock{}

// Debouncer is safe for concurrent use. The zero value is not usable; use
// New.
type Debouncer struct {
	mu     sync.Mutex
	clock  Clock
	decay  time.Duration
	active bool
	timer  Timer
	gen    uint64 // bumped on every Ping and Stop
}

// New returns an idle debouncer. A nil clock means RealClock and a
// non-positive decay means DefaultDecay.
func New(clock Clock, decay time.Duration) *Debouncer {
	if clock == nil {
		clock = RealClock
	}
	if decay <= 0 {
		decay = DefaultDecay
	}

	return &Debouncer{clock: clock, decay: decay}
}

// Ping marks the user active and restarts the decay. Any pending expiry
// is cancelled, so at most one timer is live.
func (d *Debouncer) Ping() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.active = true
	d.timer = d.clock.AfterFunc(d.decay, func() { d.expire(gen) })
}

// expire ignores callbacks from timers that a later Ping or Stop replaced;
// Stop cannot recall a callback that already started.
func (d *Debouncer) expire(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.gen {
		return
	}

	d.active = false
	d.timer = nil
}

// Active reports whether a gesture happened within the last decay period.
func (d *Debouncer) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.active
}

// Stop cancels any pending expiry and clears the flag immediately.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.gen++
	d.active = false
}
