package telemetry

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerDefaultsToInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Output: &buf, Format: FormatJSON})
	l.Info("starting run", "scheme", "tnt")
	require.Contains(t, buf.String(), "starting run")
	require.Contains(t, buf.String(), "tnt")
}

func TestWithFieldAddsChildContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Output: &buf, Format: FormatJSON}).WithField("run_id", "abc")
	l.Info("tick")
	require.Contains(t, buf.String(), "abc")
}

func TestMetricsObserveUpdatesAcceptanceRate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.Observe(100, 40)

	require.Equal(t, float64(100), testutil.ToFloat64(m.Iterations))
	require.Equal(t, float64(40), testutil.ToFloat64(m.Accepted))
	require.InDelta(t, 0.4, testutil.ToFloat64(m.AcceptanceRate), 1e-9)
}
