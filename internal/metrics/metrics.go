// Package metrics defines the Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Authentication metrics
var (
	// RegistrationsTotal tracks account registrations by result (created, duplicate, invalid)
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_registrations_total",
			Help: "Total registration attempts by result",
		},
		[]string{"result"},
	)

	// LoginsTotal tracks login attempts by method and result
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_logins_total",
			Help: "Total login attempts by method (local, twitch) and result (success, failure)",
		},
		[]string{"method", "result"},
	)

	// PasswordResetsTotal tracks password reset flow activity by phase (requested, redeemed, rejected)
	PasswordResetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_password_resets_total",
			Help: "Total password reset requests and redemptions by phase",
		},
		[]string{"phase"},
	)

	// OAuthCallbackDuration tracks the full Twitch callback latency in seconds
	OAuthCallbackDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_oauth_callback_duration_seconds",
			Help:    "Twitch OAuth callback duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)

// Billing metrics
var (
	// CheckoutSessionsTotal tracks checkout session creations by result
	CheckoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billing_checkout_sessions_total",
			Help: "Total checkout session creations by result",
		},
		[]string{"result"},
	)
)

// Content cache metrics
var (
	// CacheRequestsTotal tracks content cache lookups by entity and outcome (hit, miss, error)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_requests_total",
			Help: "Content cache lookups by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)

	// CacheInvalidationsTotal tracks explicit cache invalidations by entity
	CacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_invalidations_total",
			Help: "Explicit content cache invalidations by entity",
		},
		[]string{"entity"},
	)
)

// Database metrics
var (
	// DBQueryDuration tracks query latency by query verb
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds by query verb",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks database errors by query verb
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total database errors by query verb",
		},
		[]string{"query"},
	)
)
