// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: sqlite or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionSalt: Secret for session token HMAC (required)
  - SeedDir: CSV directory imported at startup (optional)
  - StrictParties: Fail startup on unknown party ids (default: false)
  - SessionTTL: Idle session lifetime (default: 30m)
  - Parliament: Number and dates for the summary heading (default: 42nd, 2015-10-19 to 2019-10-20)

# CLI Flags

	-p                 Server port
	-d                 Database URL
	-t                 Database type
	-seed              Seed CSV directory
	-strict-parties    true or false
	-session-ttl       Go duration, e.g. 45m
	-session-salt      Session token salt
	-parliament        Parliament number
	-parliament-start  YYYY-MM-DD
	-parliament-end    YYYY-MM-DD

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	SEED_DIR          → -seed
	STRICT_PARTIES    → -strict-parties
	SESSION_TTL       → -session-ttl
	SESSION_SALT      → -session-salt
	PARLIAMENT_NUMBER → -parliament
	PARLIAMENT_START  → -parliament-start
	PARLIAMENT_END    → -parliament-end

CLI flags take precedence over environment variables. main loads a .env
file into the environment before parsing.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - SESSION_SALT must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - SESSION_TTL must be a positive duration
  - Parliament dates must be YYYY-MM-DD
*/
package cliparse
