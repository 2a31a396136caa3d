// Package metrics defines and registers all custom Prometheus metrics for the
// community API. It is the single source of truth for metric names and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "community"

// UsersCreatedTotal counts accounts created through the API.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// UsersUpdatedTotal counts full user updates (name/email overwrites).
var UsersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_updated_total",
		Help:      "Total number of user accounts updated.",
	},
)

// UsersDeletedTotal counts self-service account deletions.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// TestUsersPurgedTotal counts accounts removed by the test-user purge.
var TestUsersPurgedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "test_users_purged_total",
		Help:      "Total number of @test.com accounts removed by the purge endpoint.",
	},
)

// LoginsTotal counts token issuance attempts, labelled by outcome.
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
