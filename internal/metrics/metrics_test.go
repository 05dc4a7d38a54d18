package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistration(t *testing.T) {
	// Verify all metrics are registered without name conflicts.
	metrics := []prometheus.Collector{
		RegistrationsTotal,
		LoginsTotal,
		PasswordResetsTotal,
		OAuthCallbackDuration,
		CheckoutSessionsTotal,
		CacheRequestsTotal,
		CacheInvalidationsTotal,
		DBQueryDuration,
		DBErrorsTotal,
	}

	for _, metric := range metrics {
		assert.NotNil(t, metric)
	}
}

func TestCounterIncrements(t *testing.T) {
	LoginsTotal.Reset()

	LoginsTotal.WithLabelValues("local", "success").Inc()
	LoginsTotal.WithLabelValues("local", "success").Inc()
	LoginsTotal.WithLabelValues("local", "failure").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(LoginsTotal.WithLabelValues("local", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(LoginsTotal.WithLabelValues("local", "failure")))
	assert.Equal(t, 0.0, testutil.ToFloat64(LoginsTotal.WithLabelValues("twitch", "success")))
}

func TestCacheMetricsLabels(t *testing.T) {
	CacheRequestsTotal.Reset()

	CacheRequestsTotal.WithLabelValues("seo", "hit").Inc()
	CacheRequestsTotal.WithLabelValues("seo", "miss").Inc()
	CacheRequestsTotal.WithLabelValues("packages", "error").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("seo", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(CacheRequestsTotal.WithLabelValues("packages", "error")))
}
