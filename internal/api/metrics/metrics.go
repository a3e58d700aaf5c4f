// Package metrics defines all custom Prometheus metrics for the mission
// console. It is the single source of truth for metric names, labels, and
// help strings; metrics register with the default registry at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mission_console"

// AuthAttemptsTotal counts authentication flow attempts.
// Labels:
//   - action: "login", "signup", "logout", "reset"
//   - outcome: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// PageRendersTotal counts page view-model renders, labelled by page id.
var PageRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_renders_total",
		Help:      "Total number of dashboard pages rendered.",
	},
	[]string{"page"},
)

// AccessDenialsTotal counts navigations turned away by the evaluator.
// Label:
//   - reason: "unauthenticated" (redirected to login) or "forbidden"
//     (unauthorized page rendered)
var AccessDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denials_total",
		Help:      "Total number of navigations denied by access control.",
	},
	[]string{"reason"},
)

// UpstreamRequestsTotal counts calls to the remote table/RPC service.
// Labels:
//   - table: table, view, or "rpc:<procedure>"
//   - op: "select", "insert", "update", "delete", "rpc"
//   - outcome: "ok" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests to the remote database service.",
	},
	[]string{"table", "op", "outcome"},
)

// UpstreamRequestDuration measures remote round-trip time per operation.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of remote database requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)
