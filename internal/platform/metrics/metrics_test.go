package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestNewMetrics_PrivateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("account-service")
		NewMetrics("account-service")
	})
}

func TestCounters(t *testing.T) {
	m := NewMetrics("account-service")

	m.IncrPosting("DEPOSIT", "ok")
	m.IncrPosting("DEPOSIT", "ok")
	m.IncrPosting("WITHDRAWAL", "insufficient_balance")
	m.IncrPostingRetry()
	m.IncrCustomerLookup(LookupUnavailable)

	assert.Equal(t, 2.0, counterValue(t, m.postings.WithLabelValues("DEPOSIT", "ok")))
	assert.Equal(t, 1.0, counterValue(t, m.postings.WithLabelValues("WITHDRAWAL", "insufficient_balance")))
	assert.Equal(t, 1.0, counterValue(t, m.postingRetries))
	assert.Equal(t, 1.0, counterValue(t, m.customerLookups.WithLabelValues(LookupUnavailable)))
	assert.Equal(t, 0.0, counterValue(t, m.customerLookups.WithLabelValues(LookupFound)))
}

func TestRecordRequest_Gathered(t *testing.T) {
	m := NewMetrics("customer-service")
	m.RecordRequest("GET", "/v1/customers/:id", "200", 15*time.Millisecond)

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "http_request_duration_seconds" {
			found = f
		}
	}
	require.NotNil(t, found)
	require.Len(t, found.GetMetric(), 1)
	metric := found.GetMetric()[0]
	assert.Equal(t, uint64(1), metric.GetHistogram().GetSampleCount())

	labels := map[string]string{}
	for _, lp := range metric.GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	assert.Equal(t, "customer-service", labels["service"])
	assert.Equal(t, "/v1/customers/:id", labels["route"])
}
