package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewDiscovery_IsSingleton(t *testing.T) {
	assert.Same(t, NewDiscovery(), NewDiscovery())
}

func TestDiscovery_Counters(t *testing.T) {
	m := NewDiscovery()

	searches := testutil.ToFloat64(m.SearchesTotal)
	toggles := testutil.ToFloat64(m.MutationsTotal.WithLabelValues("toggle_skill"))
	started := testutil.ToFloat64(m.SessionsTotal.WithLabelValues("started"))
	ended := testutil.ToFloat64(m.SessionsTotal.WithLabelValues("ended"))

	m.ObserveSearch(3)
	m.ObserveMutation("toggle_skill", 2)
	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	assert.Equal(t, searches+1, testutil.ToFloat64(m.SearchesTotal))
	assert.Equal(t, toggles+1, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("toggle_skill")))
	assert.Equal(t, started+2, testutil.ToFloat64(m.SessionsTotal.WithLabelValues("started")))
	assert.Equal(t, ended+1, testutil.ToFloat64(m.SessionsTotal.WithLabelValues("ended")))
}

func TestDiscovery_NilIsNoop(t *testing.T) {
	var m *Discovery
	assert.NotPanics(t, func() {
		m.ObserveSearch(1)
		m.ObserveMutation("clear_all", 5)
		m.SessionStarted()
		m.SessionEnded()
	})
}
