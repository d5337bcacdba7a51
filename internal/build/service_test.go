package build

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/emit"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

const testConfig = `version: "1.0"
output:
  directory: ./build
docs:
  fingerprint_length: 16
  generated_index:
    title: N2E API
openapi:
  id: n2e
versions:
  - label: next
    spec_path: specs/next.yaml
    unreleased: true
  - label: 1.0.0
    spec_path: specs/1.0.0.yaml
site:
  title: name-to-ethnicity
  url: https://example.com
`

func writeProject(t *testing.T, cfgYAML string) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	spec, err := os.ReadFile(filepath.Join("..", "openapi", "testdata", "n2e.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "specs"), 0o755))
	for _, name := range []string{"next.yaml", "1.0.0.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "specs", name), spec, 0o644))
	}
	path := filepath.Join(dir, "apidocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfgYAML), 0o644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return dir, cfg
}

type countingRecorder struct {
	metrics.NoopRecorder
	stages   map[string]metrics.ResultLabel
	outcomes []metrics.BuildOutcomeLabel
	routes   map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{stages: map[string]metrics.ResultLabel{}, routes: map[string]int{}}
}

func (r *countingRecorder) IncStageResult(stage string, result metrics.ResultLabel) {
	r.stages[stage] = result
}
func (r *countingRecorder) IncBuildOutcome(o metrics.BuildOutcomeLabel) {
	r.outcomes = append(r.outcomes, o)
}
func (r *countingRecorder) SetRoutes(version string, n int) { r.routes[version] = n }

func TestRun_Build(t *testing.T) {
	dir, cfg := writeProject(t, testConfig)
	rec := newCountingRecorder()

	res, err := NewService().WithRecorder(rec).Run(context.Background(), Request{Config: cfg})
	require.NoError(t, err)

	out := filepath.Join(dir, "build")
	assert.Equal(t, out, res.OutputPath)
	assert.Equal(t, OutcomeSuccess, res.Report.Outcome)
	for _, name := range []StageName{StageLoadSpecs, StageBuildSidebars, StageRenderPages, StageCompileRoutes, StageEmitArtifacts} {
		assert.Equal(t, StageResultSuccess, res.Report.StageResults[name], name)
		assert.Equal(t, metrics.ResultSuccess, rec.stages[string(name)], name)
	}
	assert.Equal(t, []metrics.BuildOutcomeLabel{metrics.BuildOutcomeSuccess}, rec.outcomes)

	require.NotNil(t, res.Tree.Lookup("/next/n2e/classification-route"))
	require.NotNil(t, res.Tree.Lookup("/n2e/classification-route"))
	require.Len(t, res.Report.Versions, 2)
	assert.Equal(t, "/next", res.Report.Versions[0].Path)
	assert.Equal(t, 5, res.Report.Versions[0].Operations)
	assert.Equal(t, res.Report.Versions[0].Routes, rec.routes["next"])

	for _, name := range []string{emit.RoutesJSONFile, emit.RoutesJSFile, emit.SidebarsFile, emit.SiteConfigFile, emit.BuildReportFile} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.FileExists(t, filepath.Join(out, "docs", "1.0.0", "n2e", "classification-route.api.mdx"))

	var report map[string]any
	data, err := os.ReadFile(filepath.Join(out, emit.BuildReportFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "success", report["outcome"])
	assert.Positive(t, res.Report.Files)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	dir, cfg := writeProject(t, testConfig)

	res, err := NewService().Run(context.Background(), Request{Config: cfg, DryRun: true})
	require.NoError(t, err)
	assert.True(t, res.Report.DryRun)
	assert.NotContains(t, res.Report.StageResults, StageEmitArtifacts)
	assert.NotNil(t, res.Tree)
	assert.NoDirExists(t, filepath.Join(dir, "build"))
}

func TestRun_Deterministic(t *testing.T) {
	_, cfg := writeProject(t, testConfig)
	outA := filepath.Join(t.TempDir(), "a")
	outB := filepath.Join(t.TempDir(), "b")

	_, err := NewService().Run(context.Background(), Request{Config: cfg, OutputDir: outA})
	require.NoError(t, err)
	_, err = NewService().Run(context.Background(), Request{Config: cfg, OutputDir: outB})
	require.NoError(t, err)

	for _, name := range []string{emit.RoutesJSONFile, emit.RoutesJSFile, emit.SidebarsFile, "sidebars/next/sidebar.json"} {
		a, err := os.ReadFile(filepath.Join(outA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(outB, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), name)
	}
}

func TestRun_OverrideIsWarning(t *testing.T) {
	cfgYAML := testConfig + `static_pages:
  - path: /next/n2e/classification-route
    source: pages/classify.md
`
	dir, _ := writeProject(t, testConfig)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "classify.md"), []byte("---\ntitle: Classify\n---\nHand written.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apidocs.yaml"), []byte(cfgYAML), 0o644))
	cfg, err := config.Load(filepath.Join(dir, "apidocs.yaml"))
	require.NoError(t, err)

	res, err := NewService().Run(context.Background(), Request{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, OutcomeWarning, res.Report.Outcome)
	assert.Equal(t, StageResultWarning, res.Report.StageResults[StageCompileRoutes])
	assert.Equal(t, StageResultSuccess, res.Report.StageResults[StageEmitArtifacts])
	require.Len(t, res.Report.Overrides, 1)
	assert.Equal(t, "static page /next/n2e/classification-route", res.Report.Overrides[0].Winner)
	assert.Equal(t, "@theme/MDXPage", res.Tree.Lookup("/next/n2e/classification-route").Component)
}

func TestRun_SpecErrorKeepsOutput(t *testing.T) {
	dir, cfg := writeProject(t, testConfig)
	out := filepath.Join(dir, "build")
	require.NoError(t, os.MkdirAll(out, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(out, "marker"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "specs", "1.0.0.yaml"), []byte("openapi: 3.0.3\ninfo: {version: 1.0.0}\npaths: {}\n"), 0o644))

	res, err := NewService().Run(context.Background(), Request{Config: cfg})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategorySpec))
	assert.Equal(t, OutcomeFailed, res.Report.Outcome)
	assert.Equal(t, StageResultFatal, res.Report.StageResults[StageLoadSpecs])
	assert.NotContains(t, res.Report.StageResults, StageBuildSidebars)
	assert.FileExists(t, filepath.Join(out, "marker"))
}

func TestRun_Canceled(t *testing.T) {
	_, cfg := writeProject(t, testConfig)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewService().Run(ctx, Request{Config: cfg})
	require.Error(t, err)
	assert.Equal(t, OutcomeCanceled, res.Report.Outcome)
	assert.Equal(t, StageResultCanceled, res.Report.StageResults[StageLoadSpecs])
}

func TestRun_NoConfig(t *testing.T) {
	_, err := NewService().Run(context.Background(), Request{})
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryInternal))
}

func TestClassify(t *testing.T) {
	assert.Nil(t, classify(StageLoadSpecs, nil))

	se := classify(StageLoadSpecs, assert.AnError)
	assert.Equal(t, StageErrorFatal, se.Kind)
	assert.Equal(t, StageLoadSpecs, se.Stage)
	assert.ErrorIs(t, se, assert.AnError)

	w := newWarningStageError(StageCompileRoutes, assert.AnError)
	assert.Same(t, w, classify(StageCompileRoutes, w))

	assert.Equal(t, StageErrorCanceled, classify(StageRenderPages, context.Canceled).Kind)

	warn := errors.BuildError("route overridden").Warning().Build()
	assert.Equal(t, StageErrorWarning, classify(StageCompileRoutes, warn).Kind)
	assert.Equal(t, StageErrorFatal, classify(StageCompileRoutes, errors.BuildError("broken").Build()).Kind)
}

func TestReportSummary(t *testing.T) {
	r := newReport(false)
	r.Warnings = append(r.Warnings, "w")
	r.finish()
	assert.Equal(t, OutcomeWarning, r.Outcome)
	assert.Contains(t, r.Summary(), "outcome=warning")
}
