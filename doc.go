// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the electoral cartogram API server.

The server backs an interactive map of Canadian federal ridings. Each
viewer gets a session that debounces hover events, resolves the riding
under the pointer into a bilingual detail panel, and falls back to the
seat summary for the current parliament when nothing is selected.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=cartogram.db SESSION_SALT=... SEED_DIR=./data go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -session-salt ...

A .env file in the working directory is read first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - SESSION_SALT (-session-salt): Secret for session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_DIR (-seed): CSV directory imported at startup
  - STRICT_PARTIES (-strict-parties): Refuse to start on unknown parties
  - SESSION_TTL (-session-ttl): Idle time before a session is dropped
  - PARLIAMENT_NUMBER, PARLIAMENT_START, PARLIAMENT_END: Summary heading
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

# Architecture

  - hover: Debounce state machine (enter/exit with show and hide delays)
  - tally: Winners per riding and seats per party
  - locale: Language probing and English/French formatting
  - parties: Party registry with unknown-party placeholders
  - dataset: In-memory riding data and CSV seed loading
  - db: Schema, import, and load for sqlite and postgres
  - coordinator: One viewer's hover, language, and view
  - sessions: Viewer session store with idle expiry
  - handlers, router, middleware: HTTP surface
  - metrics, logger, cliparse, auth: Supporting infrastructure

See package documentation for each component.
*/
package main
