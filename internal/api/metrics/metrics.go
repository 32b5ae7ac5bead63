// Package metrics defines and registers the custom Prometheus metrics of the
// FarmTrak API. It is the single source of truth for metric names, labels
// and help strings.
//
// Metrics register with the default registry on package init through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "farmtrak"

// Pipeline stages reported in AuthDecisionsTotal.
const (
	StageCredential = "credential"
	StageIdentity   = "identity"
	StageRole       = "role"
	StageOwnership  = "ownership"
)

// ── Auth pipeline ─────────────────────────────────────────────────────────────

// AuthDecisionsTotal counts the outcome of every pipeline stage.
// Labels:
//   - stage: credential, identity, role or ownership
//   - outcome: "pass", an error kind such as "NotOwner", or "error" for internal failures
var AuthDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_decisions_total",
		Help:      "Total number of authorization pipeline decisions, by stage and outcome.",
	},
	[]string{"stage", "outcome"},
)

// ── Resources ─────────────────────────────────────────────────────────────────

// ResourcesCreatedTotal counts newly created owned resources.
// Label:
//   - kind: any owned resource kind, e.g. farm, animal, health_record or feed
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of resources created, by kind.",
	},
	[]string{"kind"},
)

// IdempotentReplaysTotal counts create requests answered from an earlier Idempotency-Key.
var IdempotentReplaysTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of create requests replayed from a stored idempotency key.",
	},
	[]string{"kind"},
)
