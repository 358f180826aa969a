// Package metrics defines the custom Prometheus metrics for the academia
// API. It is the single source of truth for metric names, labels, and help
// strings; request-level metrics come from echoprometheus instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "academia"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts minted access tokens.
// Label:
//   - reason: "register", "login" or "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued, by reason.",
	},
	[]string{"reason"},
)

// TokensRevokedTotal counts revocations (each logout/refresh may delete
// several rows; this counts operations, not rows).
// Label:
//   - reason: "logout" or "refresh"
var TokensRevokedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of token revocation operations, by reason.",
	},
	[]string{"reason"},
)

// RateLimitRejectedTotal counts requests turned away by the rate limiter.
var RateLimitRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_rejected_total",
		Help:      "Total number of requests rejected by the per-client rate limit.",
	},
)
