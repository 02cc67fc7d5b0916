// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hover

import "time"

// Fixed debounce delays
const (
	ShowDelay = 50 * time.Millisecond
	HideDelay = 500 * time.Millisecond
)

type State int

const (
	Idle        State = iota // no selection, no timer
	PendingShow              // candidate staged, show timer armed
	Committed                // selection active, no timer
	PendingHide              // selection still active, hide timer armed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingShow:
		return "pending_show"
	case Committed:
		return "committed"
	case PendingHide:
		return "pending_hide"
	}
	return "unknown"
}

type EventKind int

const (
	EventEnter EventKind = iota
	EventExit
	EventShowFired
	EventHideFired
)

// Event is an input to the machine. Candidate is only read for EventEnter.
type Event[T any] struct {
	Kind      EventKind
	Candidate T
}

func Enter[T any](candidate T) Event[T] {
	return Event[T]{Kind: EventEnter, Candidate: candidate}
}

func Exit[T any]() Event[T] {
	return Event[T]{Kind: EventExit}
}

// Effect tells the owner what to do with its single timer
type Effect int

const (
	EffectNone Effect = iota
	EffectArmShow
	EffectArmHide
	EffectCancel
)

// Machine is the full hover state. Active is the committed selection,
// Staged the candidate waiting for the show timer.
type Machine[T any] struct {
	State  State
	Active *T
	Staged *T
}

// Reduce computes the next machine and the timer effect for one event.
// Arming always replaces whatever timer is outstanding.
func Reduce[T any](m Machine[T], ev Event[T]) (Machine[T], Effect) {
	switch ev.Kind {
	case EventEnter:
		candidate := ev.Candidate
		m.Staged = &candidate
		m.State = PendingShow
		return m, EffectArmShow

	case EventExit:
		switch m.State {
		case Idle:
			return m, EffectNone
		case PendingShow:
			m.Staged = nil
			if m.Active == nil {
				m.State = Idle
				return m, EffectCancel
			}
			// A selection is still on screen; let it linger like any other exit
			m.State = PendingHide
			return m, EffectArmHide
		default:
			m.State = PendingHide
			return m, EffectArmHide
		}

	case EventShowFired:
		if m.State != PendingShow {
			return m, EffectNone
		}
		m.Active = m.Staged
		m.Staged = nil
		m.State = Committed
		return m, EffectNone

	case EventHideFired:
		if m.State != PendingHide {
			return m, EffectNone
		}
		m.Active = nil
		m.State = Idle
		return m, EffectNone
	}
	return m, EffectNone
}
