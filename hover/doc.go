// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hover debounces pointer enter/exit events into a committed selection.

# States

	Idle         no selection, no timer
	PendingShow  candidate staged, show timer (50ms) armed
	Committed    selection active, no timer
	PendingHide  selection still active, hide timer (500ms) armed

Moving across many small ridings quickly only commits the riding the pointer
settles on. Leaving a riding keeps it on screen for half a second, so entering
a neighbour replaces it directly without flashing the idle view.

# Reducer

Reduce is the pure transition function. It returns the next Machine and an
Effect describing what to do with the timer:

	m, effect := hover.Reduce(m, hover.Enter(target))

# Controller

Controller applies Reduce with exactly one timer handle. Arming cancels the
previous timer first, and a generation counter discards any callback that
was already in flight when it was superseded.

	c := hover.NewController[models.HoverTarget](hover.RealClock)
	c.Subscribe(func(active *models.HoverTarget) { ... })
	c.Enter(target)
	c.Exit()

Tests drive time with ManualClock.Advance.
*/
package hover
