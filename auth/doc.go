// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session identifiers and tokens.

# Session IDs

Session IDs are random UUIDs:

	id := auth.NewSessionID()
	id, err := auth.ParseSessionID(r.PathValue("id"))

# Session Tokens

Session tokens use HMAC-SHA256 over the session ID:

	token := auth.SessionToken(id, salt)
	err := auth.ValidateSessionToken(id, token, salt)

The token is URL-safe base64 encoded without padding. Since it's
deterministic, validation needs no stored secret per session. Clients send
it in the X-Session-Token header.

# IP Hashing

For logging client addresses without storing them:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
