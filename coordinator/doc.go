// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package coordinator composes the hover controller, the seat tally, and the
bilingual formatter into the state behind one viewer's overlay.

The map reports pointer movement through HoverOn and HoverOff. HoverOn
resolves the riding, its province, and the result to show before staging
anything; a bad reference is returned as an error. The committed target is
kept unformatted and resolved into a CurrentSelection at read time, so a
language change applies to the selection already on screen.

View returns the selection when one is committed and the party summary
otherwise.
*/
package coordinator
