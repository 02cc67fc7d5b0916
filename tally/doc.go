// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally reduces historical result snapshots into current standings.

# Winners

ComputeWinners walks the snapshots in the order given. For every result with
a positive majority it records the result's effective party (current party
after a floor-crossing, else the party elected under) against the riding,
overwriting any earlier snapshot. Nothing is merged or accumulated.

# Summary

ComputeSummary counts ridings per party in the final winner map:

	summary := tally.ComputeSummary(sets)
	for _, row := range tally.OrderForDisplay(summary) {
		fmt.Println(row.PartyID, row.Seats)
	}
	total := tally.TotalSeats(summary)

TotalSeats always equals the number of ridings in the winner map.

# Aggregator

New computes both once; the server builds one at startup and shares it
read-only between sessions.
*/
package tally
