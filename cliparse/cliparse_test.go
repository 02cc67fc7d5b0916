// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
	"time"
)

// clearEnv blanks every variable ParseFlags reads; empty means unset to it
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE", "SEED_DIR", "STRICT_PARTIES",
		"SESSION_TTL", "SESSION_SALT", "PARLIAMENT_NUMBER", "PARLIAMENT_START", "PARLIAMENT_END",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_SALT", "test-salt")
	t.Setenv("SEED_DIR", "/data/seed")
	t.Setenv("STRICT_PARTIES", "true")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("PARLIAMENT_NUMBER", "43")
	t.Setenv("PARLIAMENT_START", "2019-10-21")
	t.Setenv("PARLIAMENT_END", "2021-09-20")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.SeedDir != "/data/seed" {
		t.Errorf("expected seed dir, got %q", cfg.SeedDir)
	}
	if !cfg.StrictParties {
		t.Error("expected strict parties")
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("expected 5m TTL, got %v", cfg.SessionTTL)
	}
	if cfg.Parliament.Number != 43 || cfg.Parliament.Start != "2019-10-21" || cfg.Parliament.End != "2021-09-20" {
		t.Errorf("unexpected parliament %+v", cfg.Parliament)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file::memory:", "-session-salt", "s"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DefaultDatabaseType {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.StrictParties {
		t.Error("expected lenient parties by default")
	}
	if cfg.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected default TTL, got %v", cfg.SessionTTL)
	}
	if cfg.Parliament.Number != 42 || cfg.Parliament.Start != "2015-10-19" || cfg.Parliament.End != "2019-10-20" {
		t.Errorf("unexpected parliament %+v", cfg.Parliament)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "5m")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-session-salt", "s1", "-session-ttl", "1h"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("CLI should override env: expected 1h, got %v", cfg.SessionTTL)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database url", nil, []string{"-session-salt", "s"}},
		{"missing salt", nil, []string{"-d", "file:test.db"}},
		{"bad port", map[string]string{"PORT": "abc"}, []string{"-d", "x", "-session-salt", "s"}},
		{"bad database type", nil, []string{"-d", "x", "-t", "mysql", "-session-salt", "s"}},
		{"bad strict flag", nil, []string{"-d", "x", "-session-salt", "s", "-strict-parties", "maybe"}},
		{"bad ttl", nil, []string{"-d", "x", "-session-salt", "s", "-session-ttl", "soon"}},
		{"negative ttl", nil, []string{"-d", "x", "-session-salt", "s", "-session-ttl", "-1m"}},
		{"bad parliament date", nil, []string{"-d", "x", "-session-salt", "s", "-parliament-start", "Oct 19"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
