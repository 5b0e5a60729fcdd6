// Package metrics defines and registers all custom Prometheus metrics for the
// accounts service. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto, before the HTTP server starts serving /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// ── Registration metrics ─────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts by outcome.
// Label:
//   - outcome: "registered", "invalid_username", "weak_password",
//     "invalid_email", "invalid_role", "duplicate", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Authentication metrics ───────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication attempts by outcome.
// Label:
//   - outcome: "ok", "user_not_found", "wrong_password", "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by outcome.",
	},
	[]string{"outcome"},
)

// HashDuration measures how long a single credential hash or verification
// takes. The bcrypt cost is tuned so hashing lands in the tens-of-milliseconds
// buckets.
// Label:
//   - operation: "hash" or "verify"
var HashDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "credential_hash_duration_seconds",
		Help:      "Duration of credential hashing and verification.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1},
	},
	[]string{"operation"},
)

// ── Audit pipeline metrics ───────────────────────────────────────────────────

// AuditEventsTotal counts audit events that finished processing.
// Label:
//   - result: "recorded" or "failed"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events processed, by result.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the current number of events waiting in each audit
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)
