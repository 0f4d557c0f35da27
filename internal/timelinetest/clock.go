// SPDX-License-Identifier: EPL-2.0

// Package timelinetest provides deterministic doubles for the timeline
// engine: a manual clock, a scripted media element and a recording sink.
package timelinetest

import (
	"sort"
	"sync"
	"time"

	"github.com/ik5/wavescrub/debounce"
)

// FakeClock fires AfterFunc callbacks only when Advance moves past them.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer

	// LateStop makes Stop report false without cancelling, as when a
	// real timer already fired and its callback is waiting to run.
	LateStop bool
}

type fakeTimer struct {
	clock   *FakeClock
	at      time.Duration
	f       func()
	seq     int
	stopped bool
	fired   bool
}

var _ debounce.Clock = (*FakeClock)(nil)

func NewFakeClock() *FakeClock { return &FakeClock{} }

func (c *FakeClock) AfterFunc(d time.Duration, f func()) debounce.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{clock: c, at: c.now + d, f: f, seq: len(c.timers)}
	c.timers = append(c.timers, t)

	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.clock.LateStop || t.stopped || t.fired {
		return false
	}
	t.stopped = true

	return true
}

// Advance moves the clock forward by d, running due callbacks in time
// order outside the clock lock.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()

			return
		}
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.f()
	}
}

func (c *FakeClock) nextDue(target time.Duration) *fakeTimer {
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})

	return due[0]
}

// Pending counts timers that are neither stopped nor fired.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}

	return n
}

// Now returns the elapsed fake time.
func (c *FakeClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}
