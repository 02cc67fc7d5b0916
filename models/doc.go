// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, view, request, and response types for the API.

# Domain Types

Static election data, loaded once at startup:

  - RidingResult: one candidate's result in one snapshot
  - DateResultSet: a dated snapshot of results
  - RidingInfo: riding id, bilingual name, province reference
  - ProvinceInfo: bilingual name and flag asset
  - PartyInfo: bilingual name and display color
  - Parliament: number and sitting dates for the summary heading

Per-viewer state:

  - HoverTarget: riding, province, and result reported by the map
  - CurrentSelection: committed selection resolved for one language

# View Types

What the overlay renders:

  - View: lang, title, and either Selection or Summary
  - SelectionView: localized strings for the hovered riding
  - SummaryView: heading, seat rows ordered for display, total
  - MapLabel: localized in-map riding label with winner color

# Request Types

  - HoverRequest: riding_id, optional date
  - SetLanguageRequest: lang

# Response Types

  - CreateSessionResponse: session_id, session_token, lang
  - MapLabelsResponse: lang, labels
  - ErrorResponse: error, message

# Constants

Languages:

	LangEN = "en"
	LangFR = "fr"

A candidate name ending in ReElectedMarker (" **") was re-elected.
*/
package models
