// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/electoral-cartogram/hover"
	"github.com/danielhkuo/electoral-cartogram/models"
)

// TestConcurrentSessions verifies that viewers hovering at the same time
// each end up with their own selection
func TestConcurrentSessions(t *testing.T) {
	env := setupTestEnv(t)

	ridings := []string{"10001", "24003", "48015", "48020", "60001"}
	numViewers := 10

	ids := make([]string, numViewers)
	tokens := make([]string, numViewers)
	for i := 0; i < numViewers; i++ {
		ids[i], tokens[i] = env.createTestSession(models.LangEN)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numViewers; i++ {
		wg.Add(1)
		go func(viewer int) {
			defer wg.Done()

			id, token := ids[viewer], tokens[viewer]
			for _, riding := range ridings {
				serve(env.sessions.HoverOn, sessionRequest("POST", "/sessions/"+id+"/hover", id, token,
					models.HoverRequest{RidingID: riding}))
			}
			w := serve(env.sessions.HoverOn, sessionRequest("POST", "/sessions/"+id+"/hover", id, token,
				models.HoverRequest{RidingID: ridings[viewer%len(ridings)]}))
			if w.Code == http.StatusAccepted {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numViewers {
		t.Errorf("Expected %d accepted hovers, got %d", numViewers, successCount.Load())
	}

	// One show timer per viewer; every earlier one was superseded
	if env.clock.Pending() != numViewers {
		t.Errorf("Expected %d pending timers, got %d", numViewers, env.clock.Pending())
	}

	env.clock.Advance(hover.ShowDelay)

	for i := 0; i < numViewers; i++ {
		coord, err := env.store.Get(ids[i])
		if err != nil {
			t.Fatalf("Session %d missing: %v", i, err)
		}
		sel := coord.Selection()
		if sel == nil {
			t.Errorf("Viewer %d has no selection", i)
			continue
		}
		want := ridings[i%len(ridings)]
		target, _ := env.deps.Data.Riding(want)
		if sel.Riding != target.Name.EN {
			t.Errorf("Viewer %d: expected %s, got %s", i, target.Name.EN, sel.Riding)
		}
	}
}

// TestConcurrentEventsOneSession hammers a single session from many
// goroutines; the controller must stay consistent with one timer at most
func TestConcurrentEventsOneSession(t *testing.T) {
	env := setupTestEnv(t)
	id, token := env.createTestSession(models.LangEN)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				serve(env.sessions.HoverOn, sessionRequest("POST", "/sessions/"+id+"/hover", id, token,
					models.HoverRequest{RidingID: "60001"}))
			} else {
				serve(env.sessions.HoverOff, sessionRequest("POST", "/sessions/"+id+"/hover-off", id, token, nil))
			}
		}(i)
	}
	wg.Wait()

	if env.clock.Pending() > 1 {
		t.Errorf("Expected at most one pending timer, got %d", env.clock.Pending())
	}

	// Whatever order the events landed in, a final enter always commits
	serve(env.sessions.HoverOn, sessionRequest("POST", "/sessions/"+id+"/hover", id, token,
		models.HoverRequest{RidingID: "60001"}))
	env.clock.Advance(hover.ShowDelay)

	coord, _ := env.store.Get(id)
	if sel := coord.Selection(); sel == nil || sel.Riding != "Yukon" {
		t.Errorf("Expected Yukon, got %+v", sel)
	}
}
