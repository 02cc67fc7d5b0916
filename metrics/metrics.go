// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cartogram_requests_total",
		Help: "HTTP requests by method and status code",
	}, []string{"method", "status"})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cartogram_request_duration_ms",
		Help:    "HTTP request latency in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
	HoverEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cartogram_hover_events_total",
		Help: "Pointer events received from the map, by kind",
	}, []string{"event"})
	SelectionChangesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cartogram_selection_changes_total",
		Help: "Committed selection changes, by kind",
	}, []string{"change"})
	LanguageChangesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cartogram_language_changes_total",
		Help: "Language toggles, by target language",
	}, []string{"lang"})
	UnknownPartiesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cartogram_unknown_party_lookups_total",
		Help: "Party lookups answered with a placeholder",
	})
	SessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cartogram_sessions_active",
		Help: "Viewer sessions currently held in memory",
	})
	SessionsExpiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cartogram_sessions_expired_total",
		Help: "Viewer sessions removed by the idle sweep",
	})
)

// Label values for HoverEventsTotal and SelectionChangesTotal
const (
	EventEnter   = "enter"
	EventExit    = "exit"
	ChangeCommit = "commit"
	ChangeClear  = "clear"
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(HoverEventsTotal)
	prometheus.MustRegister(SelectionChangesTotal)
	prometheus.MustRegister(LanguageChangesTotal)
	prometheus.MustRegister(UnknownPartiesTotal)
	prometheus.MustRegister(SessionsActive)
	prometheus.MustRegister(SessionsExpiredTotal)
}

// Handler exposes the default registry for scraping at /metrics
func Handler() http.Handler { return promhttp.Handler() }
