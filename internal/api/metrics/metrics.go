// Package metrics defines and registers all custom Prometheus metrics for
// the attendance API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "attendance"

// ── Tap metrics ───────────────────────────────────────────────────────────────

// TapsRecordedTotal counts successfully recorded taps.
// Label:
//   - type: "tap-in" or "tap-out"
var TapsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "taps_recorded_total",
		Help:      "Total number of attendance taps recorded, by tap type.",
	},
	[]string{"type"},
)

// TapOutcomesTotal counts every tap attempt by its resolved outcome code.
// Label:
//   - code: SUCCESS, NOT_REGISTERED, LIMIT_REACHED, MALFORMED_BODY,
//     MISSING_UID, INVALID_UID or SERVER_ERROR
var TapOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tap_outcomes_total",
		Help:      "Total number of tap attempts, labelled by outcome code.",
	},
	[]string{"code"},
)

// TapResolutionDuration measures how long a single tap takes to resolve
// end-to-end, from body read to response.
// Label:
//   - code: the resolved outcome code
var TapResolutionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tap_resolution_duration_seconds",
		Help:      "Duration of tap resolution from request to outcome.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"code"},
)

// ── Realtime metrics ──────────────────────────────────────────────────────────

// RealtimeSubscribers tracks the number of currently connected SSE observers.
var RealtimeSubscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_subscribers",
		Help:      "Current number of connected realtime event stream subscribers.",
	},
)

// ── Ledger metrics ────────────────────────────────────────────────────────────

// EventsDeletedTotal counts explicit admin deletions from the ledger.
var EventsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_deleted_total",
		Help:      "Total number of attendance events deleted by admin action.",
	},
)
