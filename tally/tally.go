// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"

	"github.com/danielhkuo/electoral-cartogram/models"
)

// EffectiveParty returns the party a result counts for: the current party
// after a floor-crossing, otherwise the party elected under
func EffectiveParty(r models.RidingResult) string {
	if r.CurrentParty != "" {
		return r.CurrentParty
	}
	return r.Party
}

// Winners maps each riding to the effective party of its last declared winner.
// Riding ids keep the order in which they were first seen.
type Winners struct {
	order []string
	party map[string]string
}

// ComputeWinners walks the snapshots in order. Every result with a positive
// majority overwrites whatever an earlier snapshot recorded for its riding.
func ComputeWinners(sets []models.DateResultSet) *Winners {
	w := &Winners{party: make(map[string]string)}
	for _, set := range sets {
		for _, r := range set.Results {
			if r.Majority <= 0 {
				continue
			}
			if _, seen := w.party[r.RidingID]; !seen {
				w.order = append(w.order, r.RidingID)
			}
			w.party[r.RidingID] = EffectiveParty(r)
		}
	}
	return w
}

// Party returns the winning party for a riding
func (w *Winners) Party(ridingID string) (string, bool) {
	p, ok := w.party[ridingID]
	return p, ok
}

// Len returns the number of ridings with a declared winner
func (w *Winners) Len() int {
	return len(w.order)
}

// RidingIDs returns riding ids in first-seen order
func (w *Winners) RidingIDs() []string {
	return append([]string(nil), w.order...)
}

// Summary is the seat count per party. Immutable once built.
type Summary struct {
	order []string
	seats map[string]int
}

// PartySeats is one row of a summary
type PartySeats struct {
	PartyID string
	Seats   int
}

// ComputeSummary tallies the final winner map into seats per party
func ComputeSummary(sets []models.DateResultSet) Summary {
	return summarize(ComputeWinners(sets))
}

func summarize(w *Winners) Summary {
	s := Summary{seats: make(map[string]int)}
	for _, ridingID := range w.order {
		party := w.party[ridingID]
		if _, seen := s.seats[party]; !seen {
			s.order = append(s.order, party)
		}
		s.seats[party]++
	}
	return s
}

// Seats returns the seat count for a party, 0 if it won nothing
func (s Summary) Seats(partyID string) int {
	return s.seats[partyID]
}

// Parties returns party ids in first-insertion order
func (s Summary) Parties() []string {
	return append([]string(nil), s.order...)
}

// Map returns a copy of the summary as a plain map
func (s Summary) Map() map[string]int {
	m := make(map[string]int, len(s.seats))
	for k, v := range s.seats {
		m[k] = v
	}
	return m
}

// OrderForDisplay sorts parties by seats, most first.
// Ties keep first-insertion order; callers should not rely on it.
func OrderForDisplay(s Summary) []PartySeats {
	rows := make([]PartySeats, 0, len(s.order))
	for _, party := range s.order {
		rows = append(rows, PartySeats{PartyID: party, Seats: s.seats[party]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Seats > rows[j].Seats
	})
	return rows
}

// TotalSeats sums all seat counts
func TotalSeats(s Summary) int {
	total := 0
	for _, n := range s.seats {
		total += n
	}
	return total
}

// Aggregator computes winners and summary once and serves them read-only
type Aggregator struct {
	winners *Winners
	summary Summary
}

// New builds the aggregate from the full snapshot sequence
func New(sets []models.DateResultSet) *Aggregator {
	w := ComputeWinners(sets)
	return &Aggregator{winners: w, summary: summarize(w)}
}

func (a *Aggregator) Winners() *Winners {
	return a.winners
}

func (a *Aggregator) Summary() Summary {
	return a.summary
}
