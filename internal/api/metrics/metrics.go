// Package metrics defines and registers all custom Prometheus metrics for the
// HR platform API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts tenant registrations that completed successfully.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of tenants registered.",
	},
)

// TokenRefreshTotal counts refresh-flow attempts.
// Label:
//   - result: "ok" or "rejected"
var TokenRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_total",
		Help:      "Total number of refresh-token exchanges, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verifications on protected routes.
// Label:
//   - result: "ok", "expired", "invalid", or "revoked"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of access-token verifications, by result.",
	},
	[]string{"result"},
)

// ── Payroll metrics ───────────────────────────────────────────────────────────

// PayrollJobsTotal counts processed payroll jobs.
// Label:
//   - result: "ok" or "error"
var PayrollJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payroll_jobs_total",
		Help:      "Total number of payroll jobs processed, by result.",
	},
	[]string{"result"},
)

// PayrollQueueDepth tracks the current number of jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var PayrollQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "payroll_queue_depth",
		Help:      "Current number of payroll jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
