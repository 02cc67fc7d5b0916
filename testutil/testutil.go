// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/danielhkuo/electoral-cartogram/cliparse"
	"github.com/danielhkuo/electoral-cartogram/coordinator"
	"github.com/danielhkuo/electoral-cartogram/dataset"
	"github.com/danielhkuo/electoral-cartogram/db"
	"github.com/danielhkuo/electoral-cartogram/hover"
	"github.com/danielhkuo/electoral-cartogram/locale"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/parties"
	"github.com/danielhkuo/electoral-cartogram/tally"
)

// TestDBURL is an in-memory sqlite database private to one connection
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// SeedDir is the CSV seed shared by package tests
func SeedDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "dataset", "testdata", "seed")
}

// SampleDataset loads the CSV seed: five ridings in four provinces, two
// snapshots, and one floor-crossing in Edmonton Centre (48020)
func SampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()

	d, err := dataset.LoadCSVDir(SeedDir())
	if err != nil {
		t.Fatalf("Failed to load sample dataset: %v", err)
	}
	return d
}

// SeedTestDB imports the sample dataset and reads it back
func SeedTestDB(t *testing.T, conn *sql.DB) *dataset.Dataset {
	t.Helper()

	ctx := context.Background()
	if err := db.Import(ctx, conn, SampleDataset(t)); err != nil {
		t.Fatalf("Failed to import sample dataset: %v", err)
	}
	d, err := db.Load(ctx, conn)
	if err != nil {
		t.Fatalf("Failed to load sample dataset: %v", err)
	}
	return d
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		SessionSalt:  "test-session-salt",
		SessionTTL:   time.Minute,
		Parliament: models.Parliament{
			Number: cliparse.DefaultParliamentNumber,
			Start:  cliparse.DefaultParliamentStart,
			End:    cliparse.DefaultParliamentEnd,
		},
	}
}

// TestDeps wires coordinator dependencies for d, with a manual hover clock
func TestDeps(d *dataset.Dataset, cfg cliparse.Config, clock hover.Clock) coordinator.Deps {
	registry := parties.NewRegistry(d.Parties, cfg.StrictParties)
	return coordinator.Deps{
		Data:       d,
		Parties:    registry,
		Aggregator: tally.New(d.Sets),
		Formatter:  locale.NewFormatter(registry),
		Parliament: cfg.Parliament,
		Clock:      clock,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
