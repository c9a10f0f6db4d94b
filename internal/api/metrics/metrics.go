// Package metrics defines and registers all custom Prometheus metrics for the
// grocery API. It is the single source of truth for metric names, labels, and
// help strings. HTTP-level request metrics come from the echoprometheus
// middleware; the collectors here cover domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "grocery"

// LoginAttemptsTotal counts login outcomes.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected protected requests.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "unknown_subject"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authentication guard.",
	},
	[]string{"reason"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// ItemsCreatedTotal counts grocery items added to user lists.
var ItemsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_created_total",
		Help:      "Total number of grocery items created.",
	},
)

// CommentsCreatedTotal counts comments attached to items.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)
