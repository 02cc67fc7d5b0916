// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the electoral cartogram API.

# Handler Types

  - MapHandler: Riding labels and winning party colours for the map
  - SummaryHandler: Seat totals for the current parliament
  - SessionHandler: Viewer sessions, hover events, and language

Handlers are created via constructor functions:

	sessionHandler := handlers.NewSessionHandler(store, cfg)

# Shared Views

	GET /map/ridings → GetRidings
	GET /summary     → GetSummary

Both accept ?lang=en|fr and otherwise probe Accept-Language.

# Viewer Sessions

	POST   /sessions                  → CreateSession (returns session_token)
	GET    /sessions/{id}/view        → GetView
	GET    /sessions/{id}/map/ridings → GetMap
	POST   /sessions/{id}/hover       → HoverOn
	POST   /sessions/{id}/hover-off   → HoverOff
	PUT    /sessions/{id}/language    → SetLanguage
	DELETE /sessions/{id}             → DeleteSession

Session operations require the X-Session-Token header. Hover events
return 202 Accepted: the selection only changes once the show or hide
delay has passed, so clients poll the view.
*/
package handlers
