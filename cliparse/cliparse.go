// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/danielhkuo/electoral-cartogram/models"
)

// Parliament defaults cover the 42nd Canadian Parliament
const (
	DefaultPort             = 3318
	DefaultDatabaseType     = "sqlite"
	DefaultSessionTTL       = 30 * time.Minute
	DefaultParliamentNumber = 42
	DefaultParliamentStart  = "2015-10-19"
	DefaultParliamentEnd    = "2019-10-20"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionSalt   string
	SeedDir       string
	StrictParties bool
	SessionTTL    time.Duration
	Parliament    models.Parliament
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var strict string
	var ttl string

	fs := flag.NewFlagSet("electoral-cartogram", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Data
	fs.StringVar(&cfg.SeedDir, "seed", "", "Directory of CSV files to import at startup")
	fs.StringVar(&strict, "strict-parties", "", "Fail startup on unknown party ids (true or false)")

	// Sessions
	fs.StringVar(&ttl, "session-ttl", "", "Idle session lifetime, e.g. 30m")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSalt, "session-salt", "", "Session token salt (prefer env)")

	// Parliament shown in the summary heading
	fs.IntVar(&cfg.Parliament.Number, "parliament", 0, "Parliament number")
	fs.StringVar(&cfg.Parliament.Start, "parliament-start", "", "Parliament start date (YYYY-MM-DD)")
	fs.StringVar(&cfg.Parliament.End, "parliament-end", "", "Parliament end date (YYYY-MM-DD)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DefaultDatabaseType
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.SeedDir == "" {
		cfg.SeedDir = os.Getenv("SEED_DIR")
	}

	if strict == "" {
		strict = os.Getenv("STRICT_PARTIES")
	}
	if strict != "" {
		b, err := strconv.ParseBool(strict)
		if err != nil {
			return Config{}, errors.New("invalid STRICT_PARTIES value")
		}
		cfg.StrictParties = b
	}

	if ttl == "" {
		ttl = os.Getenv("SESSION_TTL")
	}
	cfg.SessionTTL = DefaultSessionTTL
	if ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, errors.New("invalid SESSION_TTL value")
		}
		cfg.SessionTTL = d
	}

	if cfg.Parliament.Number == 0 {
		if numStr := os.Getenv("PARLIAMENT_NUMBER"); numStr != "" {
			n, err := strconv.Atoi(numStr)
			if err != nil || n <= 0 {
				return Config{}, errors.New("invalid PARLIAMENT_NUMBER env variable")
			}
			cfg.Parliament.Number = n
		} else {
			cfg.Parliament.Number = DefaultParliamentNumber
		}
	}
	if cfg.Parliament.Start == "" {
		cfg.Parliament.Start = envOr("PARLIAMENT_START", DefaultParliamentStart)
	}
	if cfg.Parliament.End == "" {
		cfg.Parliament.End = envOr("PARLIAMENT_END", DefaultParliamentEnd)
	}
	for _, d := range []string{cfg.Parliament.Start, cfg.Parliament.End} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return Config{}, fmt.Errorf("invalid parliament date %q", d)
		}
	}

	// Secrets - MUST be provided
	if cfg.SessionSalt == "" {
		cfg.SessionSalt = os.Getenv("SESSION_SALT")
	}
	if cfg.SessionSalt == "" {
		return Config{}, errors.New("SESSION_SALT required")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
