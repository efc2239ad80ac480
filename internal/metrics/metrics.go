// Package metrics defines and registers the custom Prometheus metrics for the
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - role: "startup", "investor" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// AuthRejectionsTotal counts requests stopped by the authentication middleware
// or the role guard.
// Label:
//   - reason: "missing_token", "expired_token", "invalid_token",
//     "unknown_principal", "no_principal" or "forbidden_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// ProfilesCreatedTotal counts newly created profiles.
// Label:
//   - kind: "startup" or "investor"
var ProfilesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profiles_created_total",
		Help:      "Total number of profiles created, by kind.",
	},
	[]string{"kind"},
)

// ProfileCacheTotal counts profile cache lookups.
// Labels:
//   - kind: "startup" or "investor"
//   - result: "hit", "miss" or "error"
var ProfileCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_cache_lookups_total",
		Help:      "Total number of profile cache lookups, by kind and result.",
	},
	[]string{"kind", "result"},
)
