// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrInvalidSessionID    = errors.New("invalid session id")
)

// NewSessionID returns a random version 4 UUID
func NewSessionID() string {
	return uuid.NewString()
}

// ParseSessionID rejects anything that is not a UUID before it reaches the store
func ParseSessionID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidSessionID
	}
	return parsed.String(), nil
}

// SessionToken creates an HMAC-based token for a session
// This is deterministic and verifiable
func SessionToken(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateSessionToken checks if the provided token is valid for the session
func ValidateSessionToken(sessionID, token, salt string) error {
	expected := SessionToken(sessionID, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidSessionToken
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for log correlation
	return hex.EncodeToString(sum[:8])
}
