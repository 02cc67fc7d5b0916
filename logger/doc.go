// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logger configures the default slog logger from LOG_LEVEL
// (debug, info, warn, error) and LOG_FORMAT (text or json).
package logger
