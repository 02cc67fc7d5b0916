// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the electoral cartogram API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, deps, store, cfg)

# Endpoints

Health and metrics:

	GET /health  - Pings the database
	GET /metrics - Prometheus scrape

Shared views (public, ?lang=en|fr or Accept-Language):

	GET /map/ridings - Riding labels colored by current winner
	GET /summary     - Seats per party

Viewer sessions (requires X-Session-Token except on create):

	POST   /sessions                  - Create session, returns token
	GET    /sessions/{id}/view        - Selection or summary
	GET    /sessions/{id}/map/ridings - Labels in the session language
	POST   /sessions/{id}/hover       - Pointer entered a riding
	POST   /sessions/{id}/hover-off   - Pointer left the riding
	PUT    /sessions/{id}/language    - Switch en/fr
	DELETE /sessions/{id}             - End session

# Handler Initialization

The router creates handler instances with dependency injection:

	mapHandler := handlers.NewMapHandler(deps.Data, deps.Aggregator, deps.Formatter)
	summaryHandler := handlers.NewSummaryHandler(deps.Aggregator, deps.Formatter, deps.Parliament)
	sessionHandler := handlers.NewSessionHandler(store, cfg)

The shared views read the same aggregator and formatter every session uses.
*/
package router
