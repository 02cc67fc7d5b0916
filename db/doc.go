// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores the cartogram dataset in sqlite or postgres.

# Connecting

Open accepts "sqlite" or "postgres" and pings before returning:

	conn, err := db.Open(db.TypeSQLite, "file:cartogram.db")

In-memory sqlite databases are limited to a single connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - province: Provinces and territories with bilingual names and flag
  - riding: Ridings with bilingual names
  - party: Party registry with display color
  - result_set: One row per dated snapshot, ordered by snapshot_order
  - result: Per-riding results within a snapshot, ordered by seq

# Relationships

	province 1──* riding
	result_set 1──* result
	riding 1──* result

# Import and Load

Import upserts reference data and replaces all snapshots inside one
transaction. Load reads everything back with snapshots and results in
import order, which tally depends on:

	err := db.Import(ctx, conn, ds)
	ds, err := db.Load(ctx, conn)

Queries use $n placeholders in order so the same SQL runs on both drivers.
*/
package db
