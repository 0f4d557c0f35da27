// SPDX-License-Identifier: EPL-2.0

package player_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/wavescrub/internal/player"
	"github.com/ik5/wavescrub/internal/timelinetest"
	"github.com/ik5/wavescrub/scrub"
	"github.com/ik5/wavescrub/timeline"
)

type wallClock struct{ t time.Time }

func (c *wallClock) now() time.Time          { return c.t }
func (c *wallClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func clip(rate int, seconds float64) scrub.Clip {
	return scrub.Clip{Samples: make([]float32, int(seconds*float64(rate))), SampleRate: rate}
}

type events struct{ plays, pauses int }

func newPlayer(t *testing.T) (*player.Player, *wallClock, *timelinetest.RecordingSink, *events) {
	t.Helper()

	clock := &wallClock{t: time.Unix(1_700_000_000, 0)}
	sink := timelinetest.NewRecordingSink(1000)
	ev := &events{}

	p := player.New(sink, clock.now)
	p.OnEvents(func() { ev.plays++ }, func() { ev.pauses++ })
	p.Load(clip(1000, 2))

	return p, clock, sink, ev
}

func TestPlayer_PlayWithoutMedia(t *testing.T) {
	t.Parallel()

	p := player.New(nil, nil)
	if err := p.Play(); !errors.Is(err, player.ErrNoMedia) {
		t.Fatalf("Play() error = %v, want ErrNoMedia", err)
	}
	if !p.Paused() {
		t.Error("player left paused = false")
	}
}

func TestPlayer_PlayPause(t *testing.T) {
	t.Parallel()

	p, clock, sink, ev := newPlayer(t)

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if ev.plays != 1 || p.Paused() {
		t.Fatalf("plays = %d paused = %v, want 1 false", ev.plays, p.Paused())
	}
	if got := len(sink.Played()[0]); got != 2000 {
		t.Errorf("output got %d samples, want 2000", got)
	}

	// a second Play is a no-op
	if err := p.Play(); err != nil || ev.plays != 1 {
		t.Errorf("second Play() = %v with %d play events", err, ev.plays)
	}

	clock.advance(500 * time.Millisecond)
	if got := p.CurrentTime(); got != 0.5 {
		t.Errorf("CurrentTime() = %v, want 0.5", got)
	}

	p.Pause()
	clock.advance(time.Second)
	if got := p.CurrentTime(); got != 0.5 {
		t.Errorf("CurrentTime() after pause = %v, want 0.5", got)
	}
	if ev.pauses != 1 || sink.Sounding() != 0 {
		t.Errorf("pauses = %d sounding = %d, want 1 0", ev.pauses, sink.Sounding())
	}

	p.Pause()
	if ev.pauses != 1 {
		t.Errorf("pausing a paused player emitted an event")
	}
}

func TestPlayer_SeekWhilePlaying(t *testing.T) {
	t.Parallel()

	p, clock, sink, _ := newPlayer(t)

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	clock.advance(250 * time.Millisecond)
	p.SetCurrentTime(1.5)

	played := sink.Played()
	if len(played) != 2 {
		t.Fatalf("output started %d times, want 2", len(played))
	}
	if got := len(played[1]); got != 500 {
		t.Errorf("restarted with %d samples, want 500", got)
	}
	if sink.Sounding() != 1 {
		t.Errorf("%d voices sounding, want 1", sink.Sounding())
	}

	clock.advance(250 * time.Millisecond)
	if got := p.CurrentTime(); got != 1.75 {
		t.Errorf("CurrentTime() = %v, want 1.75", got)
	}
}

func TestPlayer_SeekClamps(t *testing.T) {
	t.Parallel()

	p, _, _, _ := newPlayer(t)

	p.SetCurrentTime(-3)
	if got := p.CurrentTime(); got != 0 {
		t.Errorf("CurrentTime() = %v, want 0", got)
	}
	p.SetCurrentTime(99)
	if got := p.CurrentTime(); got != 2 {
		t.Errorf("CurrentTime() = %v, want 2", got)
	}
}

func TestPlayer_EndPausesAndRestarts(t *testing.T) {
	t.Parallel()

	p, clock, sink, ev := newPlayer(t)

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	clock.advance(3 * time.Second)

	if got := p.CurrentTime(); got != 2 {
		t.Errorf("CurrentTime() = %v, want 2", got)
	}
	if !p.Paused() || ev.pauses != 1 || sink.Sounding() != 0 {
		t.Fatalf("paused = %v pauses = %d sounding = %d", p.Paused(), ev.pauses, sink.Sounding())
	}

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if got := p.CurrentTime(); got != 0 {
		t.Errorf("Play at the end restarted at %v, want 0", got)
	}
}

func TestPlayer_OutputFailure(t *testing.T) {
	t.Parallel()

	p, _, sink, ev := newPlayer(t)
	sink.FailPlay(errors.New("device busy"))

	if err := p.Play(); err == nil {
		t.Fatal("Play() error = nil, want output failure")
	}
	if !p.Paused() || ev.plays != 0 {
		t.Errorf("paused = %v plays = %d, want true 0", p.Paused(), ev.plays)
	}
}

func TestPlayer_DrivesTimeline(t *testing.T) {
	t.Parallel()

	p, clock, _, _ := newPlayer(t)

	o := timeline.New(p, nil, nil, timeline.Options{Clock: timelinetest.NewFakeClock()})
	p.OnEvents(o.MediaPlayed, o.MediaPaused)

	// the orchestrator has nothing loaded, so it refuses to play
	if err := o.TogglePlayPause(); !errors.Is(err, timeline.ErrNotLoaded) {
		t.Fatalf("TogglePlayPause() error = %v, want ErrNotLoaded", err)
	}

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if !o.State().Playing {
		t.Error("play event not forwarded")
	}

	clock.advance(5 * time.Second)
	p.CurrentTime()
	if o.State().Playing {
		t.Error("pause at the end not forwarded")
	}
}
