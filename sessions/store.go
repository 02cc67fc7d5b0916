// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sessions

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/electoral-cartogram/auth"
	"github.com/danielhkuo/electoral-cartogram/coordinator"
	"github.com/danielhkuo/electoral-cartogram/metrics"
	"github.com/danielhkuo/electoral-cartogram/models"
)

var ErrNotFound = errors.New("session not found")

// Factory builds the coordinator for a new session
type Factory func(lang models.Lang) *coordinator.Coordinator

type entry struct {
	coord    *coordinator.Coordinator
	lastSeen time.Time
}

// Store holds one coordinator per viewer. Sessions idle longer than the
// TTL are closed by Sweep.
type Store struct {
	newCoordinator Factory
	ttl            time.Duration
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewStore(newCoordinator Factory, ttl time.Duration) *Store {
	return &Store{
		newCoordinator: newCoordinator,
		ttl:            ttl,
		now:            time.Now,
		sessions:       make(map[string]*entry),
	}
}

// Create starts a session in lang and returns its id
func (s *Store) Create(lang models.Lang) (string, *coordinator.Coordinator) {
	id := auth.NewSessionID()
	coord := s.newCoordinator(lang)

	s.mu.Lock()
	s.sessions[id] = &entry{coord: coord, lastSeen: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.SessionsActive.Set(float64(n))
	slog.Debug("session created", "session_id", id, "lang", lang)
	return id, coord
}

// Get returns the session's coordinator and marks it as used
func (s *Store) Get(id string) (*coordinator.Coordinator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastSeen = s.now()
	return e.coord, nil
}

// Delete closes and forgets a session
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	e.coord.Close()
	metrics.SessionsActive.Set(float64(n))
	slog.Debug("session deleted", "session_id", id)
	return nil
}

// Sweep closes sessions idle for longer than the TTL and returns how many
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []*entry
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, e := range expired {
		e.coord.Close()
	}
	metrics.SessionsActive.Set(float64(n))
	metrics.SessionsExpiredTotal.Add(float64(len(expired)))
	if len(expired) > 0 {
		slog.Info("expired idle sessions", "count", len(expired), "active", n)
	}
	return len(expired)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps every interval until ctx is done, then closes every session
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close closes every session
func (s *Store) Close() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range all {
		e.coord.Close()
	}
	metrics.SessionsActive.Set(0)
}
