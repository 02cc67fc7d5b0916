// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/danielhkuo/electoral-cartogram/models"
)

// CSV file names expected in a seed directory
const (
	ProvincesFile = "provinces.csv"
	RidingsFile   = "ridings.csv"
	PartiesFile   = "parties.csv"
	ResultsFile   = "results.csv"
)

type provinceRow struct {
	ID      string `csv:"id"`
	NameEN  string `csv:"name_en"`
	NameFR  string `csv:"name_fr"`
	FlagURL string `csv:"flag_url"`
}

type ridingRow struct {
	ID         string `csv:"id"`
	NameEN     string `csv:"name_en"`
	NameFR     string `csv:"name_fr"`
	ProvinceID string `csv:"province_id"`
}

type partyRow struct {
	ID     string `csv:"id"`
	NameEN string `csv:"name_en"`
	NameFR string `csv:"name_fr"`
	Color  string `csv:"color"`
}

type resultRow struct {
	Date               string  `csv:"date"`
	RidingID           string  `csv:"riding_id"`
	Candidate          string  `csv:"candidate"`
	Party              string  `csv:"party"`
	CurrentParty       string  `csv:"current_party"`
	VotePercentage     float64 `csv:"vote_percentage"`
	MajorityPercentage float64 `csv:"majority_percentage"`
	Majority           float64 `csv:"majority"`
}

// LoadCSVDir reads the four seed files from dir. Result rows are grouped
// into snapshots by date, in the order each date first appears.
func LoadCSVDir(dir string) (*Dataset, error) {
	var provinces []provinceRow
	if err := unmarshalFile(filepath.Join(dir, ProvincesFile), &provinces); err != nil {
		return nil, err
	}
	var ridings []ridingRow
	if err := unmarshalFile(filepath.Join(dir, RidingsFile), &ridings); err != nil {
		return nil, err
	}
	var parties []partyRow
	if err := unmarshalFile(filepath.Join(dir, PartiesFile), &parties); err != nil {
		return nil, err
	}
	var results []resultRow
	if err := unmarshalFile(filepath.Join(dir, ResultsFile), &results); err != nil {
		return nil, err
	}

	provinceList := make([]models.ProvinceInfo, 0, len(provinces))
	for _, p := range provinces {
		provinceList = append(provinceList, models.ProvinceInfo{
			ID:      p.ID,
			Name:    models.Name{EN: p.NameEN, FR: p.NameFR},
			FlagURL: p.FlagURL,
		})
	}

	ridingList := make([]models.RidingInfo, 0, len(ridings))
	for _, r := range ridings {
		ridingList = append(ridingList, models.RidingInfo{
			ID:         r.ID,
			Name:       models.Name{EN: r.NameEN, FR: r.NameFR},
			ProvinceID: r.ProvinceID,
		})
	}

	partyList := make([]models.PartyInfo, 0, len(parties))
	for _, p := range parties {
		partyList = append(partyList, models.PartyInfo{
			ID:    p.ID,
			Name:  models.Name{EN: p.NameEN, FR: p.NameFR},
			Color: p.Color,
		})
	}

	return New(provinceList, ridingList, partyList, groupResults(results)), nil
}

func groupResults(rows []resultRow) []models.DateResultSet {
	var sets []models.DateResultSet
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Date]
		if !ok {
			i = len(sets)
			index[row.Date] = i
			sets = append(sets, models.DateResultSet{Date: row.Date})
		}
		sets[i].Results = append(sets[i].Results, models.RidingResult{
			RidingID:           row.RidingID,
			Candidate:          row.Candidate,
			Party:              row.Party,
			CurrentParty:       row.CurrentParty,
			VotePercentage:     row.VotePercentage,
			MajorityPercentage: row.MajorityPercentage,
			Majority:           row.Majority,
		})
	}
	return sets
}

func unmarshalFile(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
