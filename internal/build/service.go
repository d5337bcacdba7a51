// Package build runs the documentation pipeline: load every version's
// OpenAPI document, build its sidebar, render its pages, compile the merged
// route tree and emit the artifacts.
package build

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/emit"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/observability"
	"git.home.luguber.info/inful/apidocs/internal/routes"
)

// Request contains all inputs required to execute a build.
type Request struct {
	Config *config.Config
	// OutputDir overrides the configured output directory.
	OutputDir string
	// DryRun runs every stage except emit_artifacts.
	DryRun bool
}

// Result contains the outcome of a build.
type Result struct {
	Report     *Report
	OutputPath string
	// Tree is the compiled route tree; nil when compile_routes did not run.
	Tree *routes.Tree
}

// Service executes builds.
type Service struct {
	recorder metrics.Recorder
	newID    func() string
}

// NewService creates a Service that records no metrics.
func NewService() *Service {
	return &Service{
		recorder: metrics.NoopRecorder{},
		newID:    func() string { return uuid.NewString() },
	}
}

// WithRecorder sets the metrics recorder.
func (s *Service) WithRecorder(r metrics.Recorder) *Service {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// Run executes the pipeline. The returned Result carries the report even
// when the build fails.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Config == nil {
		return nil, errors.InternalError("build request without configuration").Build()
	}
	out := req.OutputDir
	if out == "" {
		out = req.Config.ResolvePath(req.Config.Output.Directory)
	}

	ctx = observability.WithBuildID(ctx, s.newID())
	report := newReport(req.DryRun)
	st := &state{cfg: req.Config, report: report, dryRun: req.DryRun}
	st.emitter = &emit.Emitter{OutputDir: out, KeepPrevious: req.Config.Output.KeepPrevious}

	observability.InfoContext(ctx, "Build started",
		logfields.Path(out), logfields.Count(len(req.Config.Versions)))

	stages := []stageDef{
		{StageLoadSpecs, stageLoadSpecs},
		{StageBuildSidebars, stageBuildSidebars},
		{StageRenderPages, stageRenderPages},
		{StageCompileRoutes, stageCompileRoutes},
	}
	if !req.DryRun {
		stages = append(stages, stageDef{StageEmitArtifacts, stageEmitArtifacts})
	}
	runErr := runStages(ctx, st, stages, s.recorder)

	report.finish()
	s.recorder.ObserveBuildDuration(report.Duration())
	s.recorder.IncBuildOutcome(metrics.BuildOutcomeLabel(report.Outcome))
	for _, v := range report.Versions {
		s.recorder.SetRoutes(v.Label, v.Routes)
	}
	s.recorder.AddRouteOverrides(len(report.Overrides))
	s.recorder.SetArtifactBytes(report.Bytes)

	res := &Result{Report: report, OutputPath: out, Tree: st.tree}
	if runErr != nil {
		observability.ErrorContext(ctx, "Build failed",
			slog.String("outcome", string(report.Outcome)), logfields.Error(runErr))
		return res, unwrapStage(runErr)
	}

	if !req.DryRun {
		if err := emit.WriteReport(out, report); err != nil {
			observability.WarnContext(ctx, "Failed to write build report", logfields.Error(err))
		}
	}
	observability.InfoContext(ctx, "Build finished",
		slog.String("outcome", string(report.Outcome)), slog.String("summary", report.Summary()))
	return res, nil
}

// unwrapStage returns the classified cause of a stage failure so callers map
// it to an exit code; unclassified failures stay wrapped in the StageError.
func unwrapStage(err error) error {
	var se *StageError
	if !stdErrors.As(err, &se) {
		return err
	}
	if se.Kind == StageErrorCanceled {
		return errors.WrapError(se.Err, errors.CategoryBuild, "build canceled").Fatal().
			WithContext("stage", string(se.Stage)).Build()
	}
	if _, ok := errors.AsClassified(se.Err); ok {
		return se.Err
	}
	return se
}
