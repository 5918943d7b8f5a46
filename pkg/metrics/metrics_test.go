package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Decisions(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.IncDecision("create", "overlap")
	m.IncDecision("create", "overlap")
	m.IncDecision("create", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.decisions.WithLabelValues("create", "overlap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.decisions.WithLabelValues("create", "ok")))
}

func TestMetrics_DBQueryErrors(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("insert", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 0.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("insert")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
		m.IncDecision("create", "overlap")
		m.ObserveSlots("auto_assign", 3)
		m.IncLockFailure("redis")
	})
}
