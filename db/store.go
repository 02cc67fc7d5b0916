// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/electoral-cartogram/dataset"
	"github.com/danielhkuo/electoral-cartogram/models"
)

// Import writes a dataset in one transaction. Reference data is upserted;
// result snapshots are replaced wholesale so their order matches ds.Sets.
func Import(ctx context.Context, db *sql.DB, ds *dataset.Dataset) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	for _, p := range ds.Provinces {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO province (id, name_en, name_fr, flag_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				name_en = excluded.name_en,
				name_fr = excluded.name_fr,
				flag_url = excluded.flag_url
		`, p.ID, p.Name.EN, p.Name.FR, p.FlagURL)
		if err != nil {
			return fmt.Errorf("failed to import province %s: %w", p.ID, err)
		}
	}

	for _, r := range ds.Ridings {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO riding (id, name_en, name_fr, province_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				name_en = excluded.name_en,
				name_fr = excluded.name_fr,
				province_id = excluded.province_id
		`, r.ID, r.Name.EN, r.Name.FR, r.ProvinceID)
		if err != nil {
			return fmt.Errorf("failed to import riding %s: %w", r.ID, err)
		}
	}

	for _, p := range ds.Parties {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO party (id, name_en, name_fr, color)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				name_en = excluded.name_en,
				name_fr = excluded.name_fr,
				color = excluded.color
		`, p.ID, p.Name.EN, p.Name.FR, p.Color)
		if err != nil {
			return fmt.Errorf("failed to import party %s: %w", p.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM result`); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM result_set`); err != nil {
		return fmt.Errorf("failed to clear result sets: %w", err)
	}

	results := 0
	for i, set := range ds.Sets {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO result_set (snapshot_order, date)
			VALUES ($1, $2)
		`, i, set.Date)
		if err != nil {
			return fmt.Errorf("failed to import result set %s: %w", set.Date, err)
		}

		for seq, r := range set.Results {
			var currentParty sql.NullString
			if r.CurrentParty != "" {
				currentParty = sql.NullString{String: r.CurrentParty, Valid: true}
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO result (snapshot_order, seq, riding_id, candidate, party, current_party,
				                    vote_percentage, majority_percentage, majority)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, i, seq, r.RidingID, r.Candidate, r.Party, currentParty,
				r.VotePercentage, r.MajorityPercentage, r.Majority)
			if err != nil {
				return fmt.Errorf("failed to import result %s/%d: %w", set.Date, seq, err)
			}
			results++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	slog.Info("dataset imported",
		"provinces", len(ds.Provinces),
		"ridings", len(ds.Ridings),
		"parties", len(ds.Parties),
		"result_sets", len(ds.Sets),
		"results", results,
	)
	return nil
}

// Load reads the full dataset, snapshots in import order
func Load(ctx context.Context, db *sql.DB) (*dataset.Dataset, error) {
	provinces, err := loadProvinces(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load provinces: %w", err)
	}
	ridings, err := loadRidings(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load ridings: %w", err)
	}
	parties, err := loadParties(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load parties: %w", err)
	}
	sets, err := loadResultSets(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	return dataset.New(provinces, ridings, parties, sets), nil
}

func loadProvinces(ctx context.Context, db *sql.DB) ([]models.ProvinceInfo, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name_en, name_fr, flag_url FROM province ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.ProvinceInfo
	for rows.Next() {
		var p models.ProvinceInfo
		if err := rows.Scan(&p.ID, &p.Name.EN, &p.Name.FR, &p.FlagURL); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func loadRidings(ctx context.Context, db *sql.DB) ([]models.RidingInfo, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name_en, name_fr, province_id FROM riding ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.RidingInfo
	for rows.Next() {
		var r models.RidingInfo
		if err := rows.Scan(&r.ID, &r.Name.EN, &r.Name.FR, &r.ProvinceID); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

func loadParties(ctx context.Context, db *sql.DB) ([]models.PartyInfo, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name_en, name_fr, color FROM party ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.PartyInfo
	for rows.Next() {
		var p models.PartyInfo
		if err := rows.Scan(&p.ID, &p.Name.EN, &p.Name.FR, &p.Color); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func loadResultSets(ctx context.Context, db *sql.DB) ([]models.DateResultSet, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT rs.snapshot_order, rs.date, r.riding_id, r.candidate, r.party, r.current_party,
		       r.vote_percentage, r.majority_percentage, r.majority
		FROM result_set rs
		LEFT JOIN result r ON r.snapshot_order = rs.snapshot_order
		ORDER BY rs.snapshot_order, r.seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []models.DateResultSet
	lastOrder := -1
	for rows.Next() {
		var order int
		var date string
		var ridingID, candidate, party, currentParty sql.NullString
		var vote, margin, majority sql.NullFloat64
		if err := rows.Scan(&order, &date, &ridingID, &candidate, &party, &currentParty,
			&vote, &margin, &majority); err != nil {
			return nil, err
		}

		if order != lastOrder {
			sets = append(sets, models.DateResultSet{Date: date})
			lastOrder = order
		}
		// Snapshot with no results
		if !ridingID.Valid {
			continue
		}

		set := &sets[len(sets)-1]
		set.Results = append(set.Results, models.RidingResult{
			RidingID:           ridingID.String,
			Candidate:          candidate.String,
			Party:              party.String,
			CurrentParty:       currentParty.String,
			VotePercentage:     vote.Float64,
			MajorityPercentage: margin.Float64,
			Majority:           majority.Float64,
		})
	}
	return sets, rows.Err()
}
