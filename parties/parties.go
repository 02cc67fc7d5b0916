// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package parties

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/electoral-cartogram/metrics"
	"github.com/danielhkuo/electoral-cartogram/models"
)

var ErrUnknownParty = errors.New("unknown party")

// PlaceholderColor is used for parties missing from the registry
const PlaceholderColor = "#9e9e9e"

// Registry maps raw party ids to display info
type Registry struct {
	byID   map[string]models.PartyInfo
	strict bool

	mu     sync.Mutex
	warned map[string]bool
}

// NewRegistry builds a registry. In strict mode Validate rejects unknown ids;
// Resolve degrades to a placeholder either way.
func NewRegistry(list []models.PartyInfo, strict bool) *Registry {
	r := &Registry{
		byID:   make(map[string]models.PartyInfo, len(list)),
		strict: strict,
		warned: make(map[string]bool),
	}
	for _, p := range list {
		r.byID[p.ID] = p
	}
	return r
}

// Lookup returns the registered party or ErrUnknownParty
func (r *Registry) Lookup(partyID string) (models.PartyInfo, error) {
	p, ok := r.byID[partyID]
	if !ok {
		return models.PartyInfo{}, fmt.Errorf("%w: %q", ErrUnknownParty, partyID)
	}
	return p, nil
}

// Resolve returns the registered party, or a visible placeholder
// labelled with the raw id. Each unknown id is logged once.
func (r *Registry) Resolve(partyID string) models.PartyInfo {
	p, err := r.Lookup(partyID)
	if err == nil {
		return p
	}
	metrics.UnknownPartiesTotal.Inc()

	r.mu.Lock()
	if !r.warned[partyID] {
		r.warned[partyID] = true
		slog.Warn("unregistered party, rendering placeholder", "party_id", partyID)
	}
	r.mu.Unlock()

	return Placeholder(partyID)
}

// Placeholder is the display info for an unregistered party id
func Placeholder(partyID string) models.PartyInfo {
	label := "? " + partyID
	return models.PartyInfo{
		ID:    partyID,
		Name:  models.Name{EN: label, FR: label},
		Color: PlaceholderColor,
	}
}

// Validate checks that every id is registered. Only strict registries fail;
// lenient ones log the unknown ids and return nil.
func (r *Registry) Validate(partyIDs []string) error {
	var missing []error
	for _, id := range partyIDs {
		if _, err := r.Lookup(id); err != nil {
			missing = append(missing, err)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	err := errors.Join(missing...)
	if r.strict {
		return err
	}
	slog.Warn("party registry incomplete", "missing", len(missing), "error", err)
	return nil
}

// All returns every registered party
func (r *Registry) All() []models.PartyInfo {
	list := make([]models.PartyInfo, 0, len(r.byID))
	for _, p := range r.byID {
		list = append(list, p)
	}
	return list
}
