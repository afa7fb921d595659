// Package metrics defines the custom Prometheus metrics for the agency API.
// It is the single source of truth for metric names, labels, and help
// strings. Registration happens via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agency"

// RequestsSubmittedTotal counts service requests created by clients.
var RequestsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_requests_submitted_total",
		Help:      "Total number of service requests submitted by clients.",
	},
)

// RequestsDecidedTotal counts request decisions by outcome.
// Label:
//   - outcome: "approved" or "rejected"
var RequestsDecidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_requests_decided_total",
		Help:      "Total number of service requests approved or rejected.",
	},
	[]string{"outcome"},
)

// ProjectStatusTransitionsTotal counts project status writes.
// Label:
//   - status: the new project status (e.g. "In Progress")
var ProjectStatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_status_transitions_total",
		Help:      "Total number of project status updates, by new status.",
	},
	[]string{"status"},
)

// MessagesSentTotal counts messages accepted by the messaging endpoint.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages sent.",
	},
)

// LoginsTotal counts login attempts by result.
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
