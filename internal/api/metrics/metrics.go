// Package metrics defines and registers all custom Prometheus metrics for the
// clinic system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; expose them by mounting the echoprometheus handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthzDecisionsTotal counts authorization decisions rendered by the kernel.
// Labels:
//   - check: which guard decided ("capability", "view", "tenant", "privilege")
//   - outcome: "allow" or "deny"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of authorization decisions, by guard and outcome.",
	},
	[]string{"check", "outcome"},
)

// AuthzDenialsTotal counts denials by their stable machine reason.
// Label:
//   - reason: e.g. "cross-tenant access", "no tenant context"
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of denied authorization checks, by machine reason.",
	},
	[]string{"reason"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

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

// RevokedTokenRejectionsTotal counts requests rejected because the bearer
// token had been revoked.
var RevokedTokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "revoked_token_rejections_total",
		Help:      "Total number of requests rejected due to a denylisted token.",
	},
)

// ── Tenant metrics ────────────────────────────────────────────────────────────

// ClinicsProvisionedTotal counts successfully provisioned clinics.
var ClinicsProvisionedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clinics_provisioned_total",
		Help:      "Total number of clinics provisioned.",
	},
)
