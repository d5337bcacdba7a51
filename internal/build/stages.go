package build

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/observability"
)

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageLoadSpecs     StageName = "load_specs"
	StageBuildSidebars StageName = "build_sidebars"
	StageRenderPages   StageName = "render_pages"
	StageCompileRoutes StageName = "compile_routes"
	StageEmitArtifacts StageName = "emit_artifacts"
)

// StageErrorKind classifies the outcome of a stage.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Build must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Non-fatal; record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError is a structured error carrying the stage and underlying cause.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func newWarningStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}

func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

// StageResult is the recorded outcome of one stage.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultWarning  StageResult = "warning"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
)

// stage is a discrete unit of work in the build.
type stage func(ctx context.Context, st *state) error

type stageDef struct {
	Name StageName
	Fn   stage
}

// classify converts a raw stage error into a StageError; nil means success.
func classify(name StageName, err error) *StageError {
	if err == nil {
		return nil
	}
	var se *StageError
	if stdErrors.As(err, &se) {
		return se
	}
	if stdErrors.Is(err, context.Canceled) || stdErrors.Is(err, context.DeadlineExceeded) {
		return newCanceledStageError(name, err)
	}
	if ce, ok := errors.AsClassified(err); ok && ce.Severity() == errors.SeverityWarning {
		return newWarningStageError(name, err)
	}
	return newFatalStageError(name, err)
}

func resultFromKind(k StageErrorKind) StageResult {
	switch k {
	case StageErrorWarning:
		return StageResultWarning
	case StageErrorCanceled:
		return StageResultCanceled
	default:
		return StageResultFatal
	}
}

// runStages executes stages in order, recording timing and stopping on the
// first fatal or canceled stage.
func runStages(ctx context.Context, st *state, stages []stageDef, rec metrics.Recorder) error {
	for _, def := range stages {
		if err := ctx.Err(); err != nil {
			se := newCanceledStageError(def.Name, err)
			st.report.recordStage(def.Name, 0, se, rec)
			return se
		}

		sctx := observability.WithStage(ctx, string(def.Name))
		observability.DebugContext(sctx, "Stage started")

		t0 := time.Now()
		err := def.Fn(sctx, st)
		dur := time.Since(t0)

		se := classify(def.Name, err)
		st.report.recordStage(def.Name, dur, se, rec)
		attrs := []slog.Attr{logfields.DurationMS(float64(dur.Microseconds()) / 1000)}
		if se != nil {
			attrs = append(attrs, logfields.Error(se.Err))
		}
		observability.DebugContext(sctx, "Stage finished", attrs...)

		if se != nil && se.Kind != StageErrorWarning {
			return se
		}
	}
	return nil
}
