// SPDX-License-Identifier: EPL-2.0

package debounce_test

import (
	"testing"
	"time"

	"github.com/ik5/wavescrub/debounce"
	"github.com/ik5/wavescrub/internal/timelinetest"
)

func TestDebouncer_PingAndDecay(t *testing.T) {
	t.Parallel()

	clock := timelinetest.NewFakeClock()
	d := debounce.New(clock, time.Second)

	if d.Active() {
		t.Fatal("new debouncer is active")
	}

	d.Ping()
	if !d.Active() {
		t.Fatal("not active after Ping")
	}

	clock.Advance(999 * time.Millisecond)
	if !d.Active() {
		t.Fatal("expired before the decay")
	}

	clock.Advance(time.Millisecond)
	if d.Active() {
		t.Fatal("still active after the decay")
	}
}

func TestDebouncer_PingRestartsDecay(t *testing.T) {
	t.Parallel()

	clock := timelinetest.NewFakeClock()
	d := debounce.New(clock, time.Second)

	for range 5 {
		d.Ping()
		clock.Advance(600 * time.Millisecond)
		if !d.Active() {
			t.Fatalf("expired at %v despite pings", clock.Now())
		}
	}

	if n := clock.Pending(); n != 1 {
		t.Errorf("pending timers = %d, want 1", n)
	}

	clock.Advance(400 * time.Millisecond)
	if d.Active() {
		t.Error("active one decay after the last ping")
	}
}

func TestDebouncer_StaleCallbackIgnored(t *testing.T) {
	t.Parallel()

	clock := timelinetest.NewFakeClock()
	clock.LateStop = true
	d := debounce.New(clock, time.Second)

	d.Ping()
	clock.Advance(500 * time.Millisecond)
	d.Ping()

	// the first timer still fires at 1s
	clock.Advance(600 * time.Millisecond)
	if !d.Active() {
		t.Fatal("stale timer cleared the flag")
	}

	clock.Advance(400 * time.Millisecond)
	if d.Active() {
		t.Fatal("still active after the last decay")
	}
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	clock := timelinetest.NewFakeClock()
	d := debounce.New(clock, time.Second)

	d.Ping()
	d.Stop()

	if d.Active() {
		t.Error("active after Stop")
	}
	if n := clock.Pending(); n != 0 {
		t.Errorf("pending timers after Stop = %d, want 0", n)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	clock := timelinetest.NewFakeClock()
	d := debounce.New(clock, 0)
	d.Ping()

	clock.Advance(debounce.DefaultDecay - time.Millisecond)
	if !d.Active() {
		t.Fatal("zero decay did not fall back to the default")
	}
	clock.Advance(time.Millisecond)
	if d.Active() {
		t.Error("still active after the default decay")
	}
}

func TestDebouncer_RealClock(t *testing.T) {
	t.Parallel()

	d := debounce.New(debounce.RealClock, 20*time.Millisecond)
	d.Ping()

	deadline := time.Now().Add(2 * time.Second)
	for d.Active() {
		if time.Now().After(deadline) {
			t.Fatal("real timer never expired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
