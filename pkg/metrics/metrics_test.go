package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("test", reg)

	m.IncBookingOutcome("create", "accepted")
	m.IncBookingOutcome("create", "accepted")
	m.IncBookingOutcome("update", "room_unavailable")
	m.ObserveHTTPRequest("POST", "/api/v1/bookings", 201, 15*time.Millisecond)
	m.ObserveDBQuery("query", time.Millisecond, errors.New("boom"))
	m.SetDBStats(sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2})

	assert.Equal(t, 2.0, counterValue(t, m.bookingOutcomes.WithLabelValues("create", "accepted")))
	assert.Equal(t, 1.0, counterValue(t, m.bookingOutcomes.WithLabelValues("update", "room_unavailable")))
	assert.Equal(t, 1.0, counterValue(t, m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "201")))
	assert.Equal(t, 1.0, counterValue(t, m.dbQueryErrors.WithLabelValues("query")))
	assert.Equal(t, 2.0, gaugeValue(t, m.dbConnections.WithLabelValues("idle")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingOutcome("create", "accepted")
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("exec", time.Second, nil)
		m.SetDBStats(sql.DBStats{})
	})
}
