// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/electoral-cartogram/models"
)

var (
	ErrUnknownRiding    = errors.New("unknown riding")
	ErrUnknownProvince  = errors.New("unknown province")
	ErrUnknownResultSet = errors.New("unknown result set")
	ErrDuplicateID      = errors.New("duplicate id")
)

// Dataset is the static election data. Read-only once built.
type Dataset struct {
	Provinces []models.ProvinceInfo
	Ridings   []models.RidingInfo
	Parties   []models.PartyInfo
	Sets      []models.DateResultSet // oldest first

	provinces map[string]int
	ridings   map[string]int
	sets      map[string]int
}

// New indexes the given data. Snapshot order is kept as given.
func New(provinces []models.ProvinceInfo, ridings []models.RidingInfo, parties []models.PartyInfo, sets []models.DateResultSet) *Dataset {
	d := &Dataset{
		Provinces: provinces,
		Ridings:   ridings,
		Parties:   parties,
		Sets:      sets,
		provinces: make(map[string]int, len(provinces)),
		ridings:   make(map[string]int, len(ridings)),
		sets:      make(map[string]int, len(sets)),
	}
	for i, p := range provinces {
		d.provinces[p.ID] = i
	}
	for i, r := range ridings {
		d.ridings[r.ID] = i
	}
	for i, s := range sets {
		d.sets[s.Date] = i
	}
	return d
}

func (d *Dataset) Riding(id string) (models.RidingInfo, error) {
	i, ok := d.ridings[id]
	if !ok {
		return models.RidingInfo{}, fmt.Errorf("%w: %q", ErrUnknownRiding, id)
	}
	return d.Ridings[i], nil
}

func (d *Dataset) Province(id string) (models.ProvinceInfo, error) {
	i, ok := d.provinces[id]
	if !ok {
		return models.ProvinceInfo{}, fmt.Errorf("%w: %q", ErrUnknownProvince, id)
	}
	return d.Provinces[i], nil
}

func (d *Dataset) ResultSet(date string) (models.DateResultSet, error) {
	i, ok := d.sets[date]
	if !ok {
		return models.DateResultSet{}, fmt.Errorf("%w: %q", ErrUnknownResultSet, date)
	}
	return d.Sets[i], nil
}

// LatestResult returns the winning result for a riding from the most recent
// snapshot that declared one, with that snapshot's date
func (d *Dataset) LatestResult(ridingID string) (models.RidingResult, string, bool) {
	for i := len(d.Sets) - 1; i >= 0; i-- {
		if r, ok := winnerIn(d.Sets[i], ridingID); ok {
			return r, d.Sets[i].Date, true
		}
	}
	return models.RidingResult{}, "", false
}

// ResultIn returns the winning result for a riding in one snapshot
func (d *Dataset) ResultIn(ridingID, date string) (models.RidingResult, bool, error) {
	set, err := d.ResultSet(date)
	if err != nil {
		return models.RidingResult{}, false, err
	}
	r, ok := winnerIn(set, ridingID)
	return r, ok, nil
}

func winnerIn(set models.DateResultSet, ridingID string) (models.RidingResult, bool) {
	for _, r := range set.Results {
		if r.RidingID == ridingID && r.Majority > 0 {
			return r, true
		}
	}
	return models.RidingResult{}, false
}

// PartyIDs returns every party id the results refer to, including
// post-election affiliations, in first-seen order
func (d *Dataset) PartyIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, set := range d.Sets {
		for _, r := range set.Results {
			add(r.Party)
			add(r.CurrentParty)
		}
	}
	return ids
}

// Validate checks cross-references between results, ridings, and provinces.
// All problems are reported together.
func (d *Dataset) Validate() error {
	var errs []error

	if len(d.provinces) != len(d.Provinces) {
		errs = append(errs, fmt.Errorf("%w in provinces", ErrDuplicateID))
	}
	if len(d.ridings) != len(d.Ridings) {
		errs = append(errs, fmt.Errorf("%w in ridings", ErrDuplicateID))
	}
	if len(d.sets) != len(d.Sets) {
		errs = append(errs, fmt.Errorf("%w in result set dates", ErrDuplicateID))
	}

	for _, r := range d.Ridings {
		if _, err := d.Province(r.ProvinceID); err != nil {
			errs = append(errs, fmt.Errorf("riding %s: %w", r.ID, err))
		}
	}
	for _, set := range d.Sets {
		for _, r := range set.Results {
			if _, err := d.Riding(r.RidingID); err != nil {
				errs = append(errs, fmt.Errorf("result set %s: %w", set.Date, err))
			}
		}
	}
	return errors.Join(errs...)
}
