// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Lang is one of the two display languages
type Lang string

// Language constants
const (
	LangEN Lang = "en"
	LangFR Lang = "fr"
)

// DefaultLang is used until a locale probe or an explicit choice says otherwise
const DefaultLang = LangEN

// ReElectedMarker is appended to a candidate name when the member was re-elected
const ReElectedMarker = " **"

// Name is a display name in both languages
type Name struct {
	EN string `json:"en"`
	FR string `json:"fr"`
}

// In returns the name for lang, falling back to English
func (n Name) In(lang Lang) string {
	if lang == LangFR && n.FR != "" {
		return n.FR
	}
	return n.EN
}

// Domain types

type RidingResult struct {
	RidingID           string  `json:"riding_id"`
	Candidate          string  `json:"candidate"`
	Party              string  `json:"party"`
	CurrentParty       string  `json:"current_party,omitempty"` // set after a floor-crossing
	VotePercentage     float64 `json:"vote_percentage"`
	MajorityPercentage float64 `json:"majority_percentage"`
	Majority           float64 `json:"majority"` // > 0 marks the declared winner
}

// DateResultSet is one historical snapshot of results.
// Date is an ISO yyyy-mm-dd label.
type DateResultSet struct {
	Date    string         `json:"date"`
	Results []RidingResult `json:"results"`
}

type RidingInfo struct {
	ID         string `json:"id"`
	Name       Name   `json:"name"`
	ProvinceID string `json:"province_id"`
}

type ProvinceInfo struct {
	ID      string `json:"id"`
	Name    Name   `json:"name"`
	FlagURL string `json:"flag_url"`
}

type PartyInfo struct {
	ID    string `json:"id"`
	Name  Name   `json:"name"`
	Color string `json:"color"`
}

// Parliament describes the legislature shown in the summary heading
type Parliament struct {
	Number int    `json:"number"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// HoverTarget is what the map reports when the pointer enters a riding.
// Result is nil for ridings with no recorded result.
type HoverTarget struct {
	Riding   RidingInfo
	Province ProvinceInfo
	Result   *RidingResult
	Date     string
}

// CurrentSelection is the committed hover selection, resolved for one language
type CurrentSelection struct {
	Province           string  `json:"province"`
	Flag               string  `json:"flag"`
	Riding             string  `json:"riding"`
	Candidate          string  `json:"candidate"`
	Party              string  `json:"party"`
	OriginalParty      string  `json:"original_party,omitempty"`
	Date               string  `json:"date"`
	VotePercentage     float64 `json:"vote_percentage"`
	MajorityPercentage float64 `json:"majority_percentage"`
}

// View types

type PartyView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type SelectionView struct {
	Province           string    `json:"province,omitempty"` // empty when it would repeat the riding name
	Flag               string    `json:"flag"`
	Riding             string    `json:"riding"`
	Candidate          string    `json:"candidate"`
	Party              PartyView `json:"party"`
	ElectedAs          string    `json:"elected_as,omitempty"`
	Status             string    `json:"status"`
	VoteSummary        string    `json:"vote_summary"`
	VotePercentage     float64   `json:"vote_percentage"`
	MajorityPercentage float64   `json:"majority_percentage"`
}

type SummaryRow struct {
	Party PartyView `json:"party"`
	Seats int       `json:"seats"`
}

type SummaryView struct {
	Heading string       `json:"heading"`
	Rows    []SummaryRow `json:"rows"`
	Total   int          `json:"total"`
}

// View is what the overlay renders: a selection, or the summary when idle
type View struct {
	Lang      Lang           `json:"lang"`
	Title     string         `json:"title"`
	Selection *SelectionView `json:"selection,omitempty"`
	Summary   *SummaryView   `json:"summary,omitempty"`
}

type MapLabel struct {
	RidingID string `json:"riding_id"`
	Name     string `json:"name"`
	Province string `json:"province"`
	PartyID  string `json:"party_id,omitempty"`
	Color    string `json:"color,omitempty"`
}

// Request types

// CreateSessionRequest is optional; without a lang the Accept-Language
// header is probed
type CreateSessionRequest struct {
	Lang string `json:"lang,omitempty"`
}

type HoverRequest struct {
	RidingID string `json:"riding_id"`
	Date     string `json:"date,omitempty"` // snapshot label; latest winning result when empty
}

type SetLanguageRequest struct {
	Lang string `json:"lang"`
}

// Response types

type CreateSessionResponse struct {
	SessionID    string `json:"session_id"`
	SessionToken string `json:"session_token"`
	Lang         Lang   `json:"lang"`
}

// HoverResponse reports the hover state after an event. The selection
// itself only changes once the debounce delay has passed.
type HoverResponse struct {
	State string `json:"state"`
}

type MapLabelsResponse struct {
	Lang   Lang       `json:"lang"`
	Labels []MapLabel `json:"labels"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
