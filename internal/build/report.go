package build

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/routes"
)

// Outcome is the final result state of a build.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeWarning  Outcome = "warning"
	OutcomeFailed   Outcome = "failed"
	OutcomeCanceled Outcome = "canceled"
)

// VersionSummary counts what one version contributed.
type VersionSummary struct {
	Label      string `json:"label"`
	Path       string `json:"path"`
	Operations int    `json:"operations"`
	Pages      int    `json:"pages"`
	Routes     int    `json:"routes"`
}

// Report captures high-level metrics about a build.
type Report struct {
	SchemaVersion  int                         `json:"schema_version"`
	Start          time.Time                   `json:"start"`
	End            time.Time                   `json:"end"`
	Outcome        Outcome                     `json:"outcome"`
	DryRun         bool                        `json:"dry_run,omitempty"`
	StageDurations map[StageName]time.Duration `json:"stage_durations"`
	StageResults   map[StageName]StageResult   `json:"stage_results"`
	Versions       []VersionSummary            `json:"versions"`
	StaticPages    int                         `json:"static_pages"`
	Routes         int                         `json:"routes"`
	Overrides      []routes.Override           `json:"overrides,omitempty"`
	Files          int                         `json:"files"`
	Bytes          int64                       `json:"bytes"`
	Errors         []string                    `json:"errors,omitempty"`
	Warnings       []string                    `json:"warnings,omitempty"`
	stageErrors    map[StageName]StageErrorKind
}

func newReport(dryRun bool) *Report {
	return &Report{
		SchemaVersion:  1,
		Start:          time.Now(),
		DryRun:         dryRun,
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]StageResult),
		Versions:       []VersionSummary{},
		stageErrors:    make(map[StageName]StageErrorKind),
	}
}

func (r *Report) recordStage(name StageName, d time.Duration, se *StageError, rec metrics.Recorder) {
	r.StageDurations[name] = d
	result := StageResultSuccess
	if se != nil {
		result = resultFromKind(se.Kind)
		r.stageErrors[name] = se.Kind
		if se.Kind == StageErrorWarning {
			r.Warnings = append(r.Warnings, se.Err.Error())
		} else {
			r.Errors = append(r.Errors, se.Error())
		}
	}
	r.StageResults[name] = result
	rec.ObserveStageDuration(string(name), d)
	rec.IncStageResult(string(name), metrics.ResultLabel(result))
}

// finish stamps the end time and derives the outcome.
func (r *Report) finish() {
	r.End = time.Now()
	for _, k := range r.stageErrors {
		if k == StageErrorCanceled {
			r.Outcome = OutcomeCanceled
			return
		}
	}
	switch {
	case len(r.Errors) > 0:
		r.Outcome = OutcomeFailed
	case len(r.Warnings) > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}

// Duration is the wall time of the build.
func (r *Report) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("versions=%d static=%d routes=%d overrides=%d files=%d duration=%s warnings=%d errors=%d outcome=%s",
		len(r.Versions), r.StaticPages, r.Routes, len(r.Overrides), r.Files,
		r.Duration().Truncate(time.Millisecond), len(r.Warnings), len(r.Errors), r.Outcome)
}
