// Package metrics records build and stage metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics stay
// optional without nil checks:
//
//	b := build.New(cfg)                                  // NoopRecorder
//	b := build.New(cfg, build.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// The Prometheus recorder can dump its registry in the node-exporter
// textfile format after a build, which suits a one-shot CLI better than a
// scrape endpoint.
package metrics
