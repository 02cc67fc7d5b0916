// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/tally"
)

// PartyResolver turns a raw party id into display info. Unknown ids
// resolve to a visible placeholder rather than failing.
type PartyResolver interface {
	Resolve(partyID string) models.PartyInfo
}

// Formatter renders selections and summaries using an injected party registry
type Formatter struct {
	parties PartyResolver
}

func NewFormatter(parties PartyResolver) *Formatter {
	return &Formatter{parties: parties}
}

func (f *Formatter) Party(partyID string, lang models.Lang) models.PartyView {
	p := f.parties.Resolve(partyID)
	return models.PartyView{ID: p.ID, Name: p.Name.In(lang), Color: p.Color}
}

// ElectedAs returns the party-change annotation, or "" when the member
// still sits with the party they were elected under
func (f *Formatter) ElectedAs(originalPartyID, effectivePartyID string, lang models.Lang) string {
	if originalPartyID == "" || originalPartyID == effectivePartyID {
		return ""
	}
	return ElectedAsClause(f.parties.Resolve(originalPartyID).Name.In(lang), lang)
}

// Selection renders a committed selection. The province is left out when
// it would just repeat the riding name (territories).
func (f *Formatter) Selection(sel models.CurrentSelection, lang models.Lang) models.SelectionView {
	candidate, status := ElectionStatus(sel.Candidate, sel.Date, lang)
	riding := RidingDisplayName(sel.Riding)

	view := models.SelectionView{
		Flag:               sel.Flag,
		Riding:             riding,
		Candidate:          candidate,
		Party:              f.Party(sel.Party, lang),
		ElectedAs:          f.ElectedAs(sel.OriginalParty, sel.Party, lang),
		Status:             status,
		VoteSummary:        VoteSummary(sel.VotePercentage, sel.MajorityPercentage, lang),
		VotePercentage:     sel.VotePercentage,
		MajorityPercentage: sel.MajorityPercentage,
	}
	if riding != sel.Province {
		view.Province = sel.Province
	}
	return view
}

// Summary renders the idle view from a tallied summary
func (f *Formatter) Summary(summary tally.Summary, parliament models.Parliament, lang models.Lang) models.SummaryView {
	ordered := tally.OrderForDisplay(summary)
	rows := make([]models.SummaryRow, 0, len(ordered))
	for _, ps := range ordered {
		rows = append(rows, models.SummaryRow{
			Party: f.Party(ps.PartyID, lang),
			Seats: ps.Seats,
		})
	}
	return models.SummaryView{
		Heading: ParliamentHeading(parliament, lang),
		Rows:    rows,
		Total:   tally.TotalSeats(summary),
	}
}
