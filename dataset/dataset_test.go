// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danielhkuo/electoral-cartogram/models"
)

func TestLoadCSVDir(t *testing.T) {
	d, err := LoadCSVDir("testdata/seed")
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}

	if len(d.Provinces) != 4 || len(d.Ridings) != 5 || len(d.Parties) != 4 {
		t.Errorf("Unexpected sizes: %d provinces, %d ridings, %d parties",
			len(d.Provinces), len(d.Ridings), len(d.Parties))
	}

	if len(d.Sets) != 2 {
		t.Fatalf("Expected 2 result sets, got %d", len(d.Sets))
	}
	if d.Sets[0].Date != "2015-10-19" || d.Sets[1].Date != "2017-04-03" {
		t.Errorf("Result sets out of order: %s, %s", d.Sets[0].Date, d.Sets[1].Date)
	}
	if len(d.Sets[0].Results) != 6 {
		t.Errorf("Expected 6 results in first set, got %d", len(d.Sets[0].Results))
	}

	crossed := d.Sets[1].Results[0]
	if crossed.CurrentParty != "Conservative" || crossed.Majority != 1500 {
		t.Errorf("Unexpected floor-crossing row %+v", crossed)
	}

	q, err := d.Province("QC")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.Name.FR != "Québec" {
		t.Errorf("Expected Québec, got %s", q.Name.FR)
	}

	if err := d.Validate(); err != nil {
		t.Errorf("Seed data should validate: %v", err)
	}
}

func TestLoadCSVDirMissing(t *testing.T) {
	if _, err := LoadCSVDir("testdata/does-not-exist"); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestValidateDanglingReferences(t *testing.T) {
	d, err := LoadCSVDir("testdata/dangling")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}

	err = d.Validate()
	if !errors.Is(err, ErrUnknownProvince) {
		t.Errorf("Expected ErrUnknownProvince, got %v", err)
	}
	if !errors.Is(err, ErrUnknownRiding) {
		t.Errorf("Expected ErrUnknownRiding, got %v", err)
	}
}

func TestValidateDuplicates(t *testing.T) {
	d := New(
		[]models.ProvinceInfo{{ID: "AB"}, {ID: "AB"}},
		[]models.RidingInfo{{ID: "1", ProvinceID: "AB"}},
		nil,
		nil,
	)
	if err := d.Validate(); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}
}

func TestLookups(t *testing.T) {
	d, err := LoadCSVDir("testdata/seed")
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}

	tests := []struct {
		name    string
		lookup  func() error
		wantErr error
	}{
		{"known riding", func() error { _, err := d.Riding("60001"); return err }, nil},
		{"unknown riding", func() error { _, err := d.Riding("00000"); return err }, ErrUnknownRiding},
		{"unknown province", func() error { _, err := d.Province("PE"); return err }, ErrUnknownProvince},
		{"known set", func() error { _, err := d.ResultSet("2017-04-03"); return err }, nil},
		{"unknown set", func() error { _, err := d.ResultSet("1867-07-01"); return err }, ErrUnknownResultSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLatestResult(t *testing.T) {
	d, err := LoadCSVDir("testdata/seed")
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}

	r, date, ok := d.LatestResult("48020")
	if !ok {
		t.Fatal("Expected a result for 48020")
	}
	if date != "2017-04-03" || r.CurrentParty != "Conservative" {
		t.Errorf("Expected the 2017 snapshot, got %s %+v", date, r)
	}

	r, date, ok = d.LatestResult("10001")
	if !ok || date != "2015-10-19" || r.Candidate != "Ken McDonald" {
		t.Errorf("Unexpected result for 10001: %s %+v %v", date, r, ok)
	}

	if _, _, ok := d.LatestResult("00000"); ok {
		t.Error("Expected no result for unknown riding")
	}
}

func TestResultIn(t *testing.T) {
	d, err := LoadCSVDir("testdata/seed")
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}

	r, ok, err := d.ResultIn("48020", "2015-10-19")
	if err != nil || !ok {
		t.Fatalf("Expected result, got ok=%v err=%v", ok, err)
	}
	if r.Candidate != "Randy Boissonnault" || r.CurrentParty != "" {
		t.Errorf("Expected the winner, not the runner-up: %+v", r)
	}

	_, ok, err = d.ResultIn("10001", "2017-04-03")
	if err != nil || ok {
		t.Errorf("Riding absent from snapshot: ok=%v err=%v", ok, err)
	}

	if _, _, err := d.ResultIn("10001", "1999-01-01"); !errors.Is(err, ErrUnknownResultSet) {
		t.Errorf("Expected ErrUnknownResultSet, got %v", err)
	}
}

func TestPartyIDs(t *testing.T) {
	d, err := LoadCSVDir("testdata/seed")
	if err != nil {
		t.Fatalf("Failed to load seed: %v", err)
	}

	want := []string{"Liberal", "Conservative", "NDP-New Democratic Party"}
	if got := d.PartyIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
