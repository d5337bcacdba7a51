package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "apidocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg            *prom.Registry
	stageDuration  *prom.HistogramVec
	buildDuration  prom.Histogram
	stageResults   *prom.CounterVec
	buildOutcome   *prom.CounterVec
	routes         *prom.GaugeVec
	routeOverrides prom.Counter
	artifactBytes  prom.Gauge
}

// NewPrometheusRecorder constructs and registers the metrics on reg, or on a
// fresh registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual build stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "build_duration_seconds",
		Help:      "Total build duration",
		Buckets:   prom.DefBuckets,
	})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "build_outcomes_total",
		Help:      "Build outcomes by final status",
	}, []string{"outcome"})
	pr.routes = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "routes",
		Help:      "Exact routes contributed by each version in the last build",
	}, []string{"version"})
	pr.routeOverrides = prom.NewCounter(prom.CounterOpts{
		Namespace: namespace,
		Name:      "route_overrides_total",
		Help:      "Routes dropped because a later source produced the same path",
	})
	pr.artifactBytes = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "artifact_bytes",
		Help:      "Bytes written to the output directory by the last build",
	})
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults, pr.buildOutcome, pr.routes, pr.routeOverrides, pr.artifactBytes)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcomeLabel) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetRoutes(version string, n int) {
	if p == nil || p.routes == nil {
		return
	}
	p.routes.WithLabelValues(version).Set(float64(n))
}

func (p *PrometheusRecorder) AddRouteOverrides(n int) {
	if p == nil || p.routeOverrides == nil || n <= 0 {
		return
	}
	p.routeOverrides.Add(float64(n))
}

func (p *PrometheusRecorder) SetArtifactBytes(n int64) {
	if p == nil || p.artifactBytes == nil {
		return
	}
	p.artifactBytes.Set(float64(n))
}

// WriteTextfile writes the registry to path in the text exposition format,
// atomically, for the node-exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}
