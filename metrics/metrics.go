// Package metrics defines the Prometheus metrics exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "metrodms"

// Login outcomes.
const (
	LoginSuccess         = "success"
	LoginInvalid         = "invalid_credentials"
	LoginThrottled       = "throttled"
	LoginCaptchaRequired = "captcha_required"
	LoginBadRequest      = "bad_request"
)

// LoginAttemptsTotal counts login submissions.
// Labels:
//   - surface: "page" or "api"
//   - result: one of the Login* constants
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login submissions, by surface and result.",
	},
	[]string{"surface", "result"},
)

// RouteDecisionsTotal counts route guard decisions.
// Label:
//   - outcome: "render", "redirect" or "not_found"
var RouteDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// RecordQueriesTotal counts filtered collection queries.
// Label:
//   - collection: catalog collection name
var RecordQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_queries_total",
		Help:      "Total number of filtered record queries, by collection.",
	},
	[]string{"collection"},
)

// HTTPRequestDuration measures request handling time.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "status"},
)
