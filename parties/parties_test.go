// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package parties

import (
	"errors"
	"testing"

	"github.com/danielhkuo/electoral-cartogram/models"
)

var list = []models.PartyInfo{
	{ID: "Liberal", Name: models.Name{EN: "Liberal", FR: "Libéral"}, Color: "#d71920"},
	{ID: "Green Party", Name: models.Name{EN: "Green", FR: "Vert"}, Color: "#3d9b35"},
}

func TestLookup(t *testing.T) {
	r := NewRegistry(list, true)

	p, err := r.Lookup("Green Party")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if p.Name.FR != "Vert" {
		t.Errorf("Expected Vert, got %s", p.Name.FR)
	}

	_, err = r.Lookup("Rhinoceros")
	if !errors.Is(err, ErrUnknownParty) {
		t.Errorf("Expected ErrUnknownParty, got %v", err)
	}
}

func TestResolvePlaceholder(t *testing.T) {
	r := NewRegistry(list, false)

	p := r.Resolve("Rhinoceros")
	if p.ID != "Rhinoceros" {
		t.Errorf("Expected placeholder to keep id, got %s", p.ID)
	}
	if p.Name.EN != "? Rhinoceros" || p.Name.FR != "? Rhinoceros" {
		t.Errorf("Unexpected placeholder name %+v", p.Name)
	}
	if p.Color != PlaceholderColor {
		t.Errorf("Expected placeholder color, got %s", p.Color)
	}

	if got := r.Resolve("Liberal"); got.Color != "#d71920" {
		t.Errorf("Expected registered party, got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		ids     []string
		wantErr bool
	}{
		{"all known", true, []string{"Liberal", "Green Party"}, false},
		{"strict unknown", true, []string{"Liberal", "Rhinoceros"}, true},
		{"lenient unknown", false, []string{"Rhinoceros"}, false},
		{"empty", true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry(list, tt.strict).Validate(tt.ids)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrUnknownParty) {
				t.Errorf("Expected ErrUnknownParty in %v", err)
			}
		})
	}
}

func TestAll(t *testing.T) {
	if got := len(NewRegistry(list, false).All()); got != 2 {
		t.Errorf("Expected 2 parties, got %d", got)
	}
}
