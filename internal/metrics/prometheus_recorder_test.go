package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("compile_routes", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncStageResult("compile_routes", ResultSuccess)
	pr.IncBuildOutcome(BuildOutcomeSuccess)
	pr.SetRoutes("next", 12)
	pr.AddRouteOverrides(2)
	pr.AddRouteOverrides(0)
	pr.SetArtifactBytes(4096)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 7)

	byName := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		byName[mf.GetName()] = mf
	}
	assert.InDelta(t, 1, byName["apidocs_stage_results_total"].GetMetric()[0].GetCounter().GetValue(), 0)
	assert.InDelta(t, 12, byName["apidocs_routes"].GetMetric()[0].GetGauge().GetValue(), 0)
	assert.InDelta(t, 2, byName["apidocs_route_overrides_total"].GetMetric()[0].GetCounter().GetValue(), 0)
	assert.InDelta(t, 4096, byName["apidocs_artifact_bytes"].GetMetric()[0].GetGauge().GetValue(), 0)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObserveStageDuration("x", time.Second)
		pr.IncBuildOutcome(BuildOutcomeFailed)
		pr.SetRoutes("next", 1)
	})
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncBuildOutcome(BuildOutcomeWarning)

	path := filepath.Join(t.TempDir(), "apidocs.prom")
	require.NoError(t, pr.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `apidocs_build_outcomes_total{outcome="warning"} 1`)
}
