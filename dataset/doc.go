// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset holds the static riding, province, party, and result data.

Data is trusted and loaded once. Validate reports every dangling reference
at startup so a bad seed fails before the server listens.

# Seed Files

LoadCSVDir reads four CSV files with header rows:

	provinces.csv  id,name_en,name_fr,flag_url
	ridings.csv    id,name_en,name_fr,province_id
	parties.csv    id,name_en,name_fr,color
	results.csv    date,riding_id,candidate,party,current_party,
	               vote_percentage,majority_percentage,majority

Result rows are grouped into snapshots by date in first-appearance order,
so results.csv must list older snapshots first.

# Lookups

  - Riding, Province, ResultSet: by id, wrapped sentinel errors when missing
  - LatestResult: the winning result from the newest snapshot that has one
  - ResultIn: the winning result in a named snapshot
*/
package dataset
