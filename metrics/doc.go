// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics registers Prometheus collectors on the default registry.

  - cartogram_requests_total{method,status}, cartogram_request_duration_ms:
    recorded by middleware.WithLogging
  - cartogram_hover_events_total{event}, cartogram_selection_changes_total{change},
    cartogram_language_changes_total{lang}: recorded by coordinator
  - cartogram_unknown_party_lookups_total: recorded by parties.Registry.Resolve
  - cartogram_sessions_active, cartogram_sessions_expired_total: recorded by sessions.Store

Handler serves the registry; router mounts it at GET /metrics.
*/
package metrics
