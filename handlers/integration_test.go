// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/danielhkuo/electoral-cartogram/hover"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/testutil"
)

// TestFullViewerWorkflow tests the complete end-to-end workflow:
// 1. Create session from a French browser
// 2. Sweep across several ridings quickly
// 3. Settle on one riding
// 4. Leave and enter a neighbour within the hide delay
// 5. Switch language
// 6. Leave the map and fall back to the summary
// 7. End the session
func TestFullViewerWorkflow(t *testing.T) {
	env := setupTestEnv(t)

	// Step 1: Create a session
	req := testutil.MakeRequest("POST", "/sessions", nil, map[string]string{"Accept-Language": "fr-CA"})
	w := serve(env.sessions.CreateSession, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create session failed: %d - %s", w.Code, w.Body.String())
	}

	var created models.CreateSessionResponse
	testutil.AssertJSON(t, w, &created)
	id, token := created.SessionID, created.SessionToken
	if created.Lang != models.LangFR {
		t.Fatalf("Step 1 - Expected French, got %s", created.Lang)
	}
	t.Logf("Step 1 - Created session: %s", id)

	hoverOn := func(riding string) {
		t.Helper()
		w := serve(env.sessions.HoverOn, sessionRequest("POST", "/sessions/"+id+"/hover", id, token,
			models.HoverRequest{RidingID: riding}))
		if w.Code != http.StatusAccepted {
			t.Fatalf("Hover %s failed: %d - %s", riding, w.Code, w.Body.String())
		}
	}
	hoverOff := func() {
		t.Helper()
		w := serve(env.sessions.HoverOff, sessionRequest("POST", "/sessions/"+id+"/hover-off", id, token, nil))
		if w.Code != http.StatusAccepted {
			t.Fatalf("Hover off failed: %d - %s", w.Code, w.Body.String())
		}
	}
	getView := func() models.View {
		t.Helper()
		w := serve(env.sessions.GetView, sessionRequest("GET", "/sessions/"+id+"/view", id, token, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Get view failed: %d - %s", w.Code, w.Body.String())
		}
		var v models.View
		testutil.AssertJSON(t, w, &v)
		return v
	}

	// Step 2: Sweep quickly; nothing commits
	for _, riding := range []string{"10001", "24003", "48015"} {
		hoverOn(riding)
		env.clock.Advance(hover.ShowDelay / 5)
		hoverOff()
	}
	if v := getView(); v.Selection != nil {
		t.Fatalf("Step 2 - Sweep committed a selection: %+v", v.Selection)
	}
	if env.clock.Pending() > 1 {
		t.Errorf("Step 2 - Expected at most one pending timer, got %d", env.clock.Pending())
	}

	// Step 3: Settle on Beauport--Limoilou
	hoverOn("24003")
	env.clock.Advance(hover.ShowDelay)
	v := getView()
	if v.Selection == nil || v.Selection.Province != "Québec" {
		t.Fatalf("Step 3 - Expected Québec selection, got %+v", v.Selection)
	}
	if v.Selection.Party.Name != "Conservateur" {
		t.Errorf("Step 3 - Expected Conservateur, got %s", v.Selection.Party.Name)
	}
	if v.Selection.VoteSummary != "30.6 % du vote (+3.2 points en avant)" {
		t.Errorf("Step 3 - Unexpected vote summary %q", v.Selection.VoteSummary)
	}

	// Step 4: Cross a border; the old riding stays until the new one commits
	hoverOff()
	env.clock.Advance(hover.HideDelay / 2)
	hoverOn("48015")
	if v := getView(); v.Selection == nil || v.Selection.Riding != "Beauport--Limoilou" {
		t.Fatalf("Step 4 - Expected previous riding to linger, got %+v", v.Selection)
	}
	env.clock.Advance(hover.ShowDelay)
	v = getView()
	if v.Selection == nil || v.Selection.Candidate != "Linda Duncan" {
		t.Fatalf("Step 4 - Expected Edmonton Strathcona, got %+v", v.Selection)
	}
	if !strings.HasPrefix(v.Selection.Status, "Réélu(e) ") {
		t.Errorf("Step 4 - Unexpected status %q", v.Selection.Status)
	}

	// Step 5: Switch to English; the selection re-renders
	w = serve(env.sessions.SetLanguage, sessionRequest("PUT", "/sessions/"+id+"/language", id, token,
		models.SetLanguageRequest{Lang: "en"}))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 5 - Set language failed: %d - %s", w.Code, w.Body.String())
	}
	testutil.AssertJSON(t, w, &v)
	if v.Lang != models.LangEN || !strings.HasPrefix(v.Selection.Status, "Re-elected ") {
		t.Errorf("Step 5 - Expected English view, got %s / %q", v.Lang, v.Selection.Status)
	}

	// Step 6: Leave the map
	hoverOff()
	env.clock.Advance(hover.HideDelay)
	v = getView()
	if v.Selection != nil || v.Summary == nil {
		t.Fatalf("Step 6 - Expected summary, got %+v", v)
	}
	if v.Summary.Total != 5 {
		t.Errorf("Step 6 - Expected 5 seats, got %d", v.Summary.Total)
	}

	// Step 7: End the session
	w = serve(env.sessions.DeleteSession, sessionRequest("DELETE", "/sessions/"+id, id, token, nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("Step 7 - Delete failed: %d - %s", w.Code, w.Body.String())
	}
}
