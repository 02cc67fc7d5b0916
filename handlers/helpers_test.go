// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/electoral-cartogram/auth"
	"github.com/danielhkuo/electoral-cartogram/cliparse"
	"github.com/danielhkuo/electoral-cartogram/coordinator"
	"github.com/danielhkuo/electoral-cartogram/hover"
	"github.com/danielhkuo/electoral-cartogram/middleware"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/sessions"
	"github.com/danielhkuo/electoral-cartogram/testutil"
)

type testEnv struct {
	cfg      cliparse.Config
	deps     coordinator.Deps
	store    *sessions.Store
	clock    *hover.ManualClock
	sessions *SessionHandler
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := testutil.GetTestConfig()
	clock := hover.NewManualClock()
	deps := testutil.TestDeps(testutil.SampleDataset(t), cfg, clock)

	store := sessions.NewStore(func(lang models.Lang) *coordinator.Coordinator {
		return coordinator.New(deps, lang)
	}, cfg.SessionTTL)
	t.Cleanup(store.Close)

	return &testEnv{
		cfg:      cfg,
		deps:     deps,
		store:    store,
		clock:    clock,
		sessions: NewSessionHandler(store, cfg),
	}
}

// createTestSession opens a session directly in the store and returns its id and token
func (e *testEnv) createTestSession(lang models.Lang) (id, token string) {
	id, _ = e.store.Create(lang)
	return id, auth.SessionToken(id, e.cfg.SessionSalt)
}

// sessionRequest builds a request for a session route with path value and token set
func sessionRequest(method, path, id, token string, body interface{}) *http.Request {
	req := testutil.MakeRequest(method, path, body, nil)
	req.SetPathValue("id", id)
	if token != "" {
		req.Header.Set(middleware.SessionTokenHeader, token)
	}
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func nopCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
