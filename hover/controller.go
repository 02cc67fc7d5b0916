// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hover

import (
	"sync"
	"time"
)

// Controller owns one Machine and the single timer it may have outstanding.
// Events and timer callbacks are serialized by mu. A callback whose
// generation is stale was superseded and does nothing.
type Controller[T any] struct {
	mu        sync.Mutex
	clock     Clock
	m         Machine[T]
	timer     Timer
	gen       uint64
	listeners []func(active *T)
	closed    bool
}

func NewController[T any](clock Clock) *Controller[T] {
	if clock == nil {
		clock = RealClock
	}
	return &Controller[T]{clock: clock}
}

// Enter stages candidate and arms the show timer
func (c *Controller[T]) Enter(candidate T) {
	c.dispatch(Enter(candidate))
}

// Exit drops a staged candidate or arms the hide timer
func (c *Controller[T]) Exit() {
	c.dispatch(Exit[T]())
}

// Subscribe registers fn to be called after every commit or clear.
// fn runs with the controller locked and must not call back into it.
func (c *Controller[T]) Subscribe(fn func(active *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Active returns the committed selection
func (c *Controller[T]) Active() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m.Active == nil {
		var zero T
		return zero, false
	}
	return *c.m.Active, true
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m.State
}

// Close cancels the outstanding timer. Later events are ignored.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	c.closed = true
}

func (c *Controller[T]) dispatch(ev Event[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.apply(ev)
}

func (c *Controller[T]) apply(ev Event[T]) {
	before := c.m.Active
	next, effect := Reduce(c.m, ev)
	c.m = next

	switch effect {
	case EffectArmShow:
		c.arm(ShowDelay, EventShowFired)
	case EffectArmHide:
		c.arm(HideDelay, EventHideFired)
	case EffectCancel:
		c.cancel()
	}

	if next.Active != before {
		for _, fn := range c.listeners {
			fn(next.Active)
		}
	}
}

func (c *Controller[T]) arm(d time.Duration, kind EventKind) {
	c.cancel()
	gen := c.gen
	c.timer = c.clock.AfterFunc(d, func() { c.fire(gen, kind) })
}

func (c *Controller[T]) cancel() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Controller[T]) fire(gen uint64, kind EventKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	c.timer = nil
	c.apply(Event[T]{Kind: kind})
}
