// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sessions keeps one coordinator per viewer in memory.

Each browser tab that opens the map creates a session and gets back a
UUID and an HMAC token (see auth). Nothing is persisted; a restart or an
idle timeout starts the viewer over in the probed language.

	store := sessions.NewStore(factory, cfg.SessionTTL)
	go store.Run(ctx, time.Minute)

The cartogram_sessions_active gauge tracks the store size.
*/
package sessions
