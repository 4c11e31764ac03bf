package engine

import (
	"time"

	gameengine "github.com/riverraid-go/riverraid/pkg/engine"
)

type handle struct {
	cancelled bool
}

var _ gameengine.Handle = &handle{}

func (h *handle) Cancel() {
	h.cancelled = true
}

type listener struct {
	*handle
	fn func()
}

type timer struct {
	*handle
	at time.Duration
	fn func()
}

// events holds keyboard listeners and delayed calls. Callbacks may cancel
// other handles while being dispatched; a cancelled handle never fires.
type events struct {
	keyDown []*listener
	timers  []*timer
}

func newEvents() *events {
	return &events{}
}

func (ev *events) onKeyDown(fn func()) gameengine.Handle {
	l := &listener{handle: &handle{}, fn: fn}
	ev.keyDown = append(ev.keyDown, l)
	return l.handle
}

func (ev *events) delayedCall(at time.Duration, fn func()) gameengine.Handle {
	t := &timer{handle: &handle{}, at: at, fn: fn}
	ev.timers = append(ev.timers, t)
	return t.handle
}

func (ev *events) dispatchKeyDown() {
	listeners := append([]*listener(nil), ev.keyDown...)
	for _, l := range listeners {
		if !l.cancelled {
			l.fn()
		}
	}
	ev.keyDown = pruneCancelled(ev.keyDown)
}

func (ev *events) dispatchTimers(now time.Duration) {
	timers := append([]*timer(nil), ev.timers...)
	for _, t := range timers {
		if t.cancelled || t.at > now {
			continue
		}
		t.cancelled = true
		t.fn()
	}
	ev.timers = pruneCancelled(ev.timers)
}

func (ev *events) pending() int {
	n := 0
	for _, l := range ev.keyDown {
		if !l.cancelled {
			n++
		}
	}
	for _, t := range ev.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func pruneCancelled[T interface{ isCancelled() bool }](items []T) []T {
	kept := items[:0]
	for _, item := range items {
		if !item.isCancelled() {
			kept = append(kept, item)
		}
	}
	return kept
}

func (h *handle) isCancelled() bool {
	return h.cancelled
}
