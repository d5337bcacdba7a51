package emit

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/logfields"
)

// stager writes into <output>_stage and promotes it over <output> in one rename.
type stager struct {
	outputDir    string
	stageDir     string
	keepPrevious bool
}

func newStager(outputDir string, keepPrevious bool) *stager {
	return &stager{outputDir: filepath.Clean(outputDir), keepPrevious: keepPrevious}
}

// begin creates a fresh sibling staging dir, removing leftovers of an aborted run.
func (s *stager) begin() error {
	stage := s.outputDir + "_stage"
	if err := os.RemoveAll(stage); err != nil {
		return fmt.Errorf("remove stale staging dir: %w", err)
	}
	if err := os.MkdirAll(stage, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	s.stageDir = stage
	slog.Debug("Initialized staging directory", "staging", stage, "final", s.outputDir)
	return nil
}

// finalize moves the existing output to <output>.prev, renames staging to
// output and drops the backup unless keepPrevious is set.
func (s *stager) finalize() error {
	if s.stageDir == "" {
		return fmt.Errorf("no staging directory initialized")
	}
	if _, err := os.Stat(s.stageDir); err != nil {
		return fmt.Errorf("staging directory missing: %w", err)
	}

	prev := s.outputDir + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		return fmt.Errorf("remove old backup: %w", err)
	}
	if _, err := os.Stat(s.outputDir); err == nil {
		if err := os.Rename(s.outputDir, prev); err != nil {
			return fmt.Errorf("backup existing output: %w", err)
		}
	}
	if err := os.Rename(s.stageDir, s.outputDir); err != nil {
		// Put the previous output back so a failed promotion changes nothing.
		if _, statErr := os.Stat(prev); statErr == nil {
			_ = os.Rename(prev, s.outputDir)
		}
		return fmt.Errorf("promote staging: %w", err)
	}
	s.stageDir = ""
	if !s.keepPrevious {
		if err := os.RemoveAll(prev); err != nil {
			slog.Warn("Failed to remove previous output", logfields.Path(prev), logfields.Error(err))
		}
	}
	slog.Debug("Promoted staging directory", "output", s.outputDir)
	return nil
}

// abort removes the staging directory after a failed emit.
func (s *stager) abort() {
	if s.stageDir == "" {
		return
	}
	dir := s.stageDir
	s.stageDir = ""
	if err := os.RemoveAll(dir); err != nil {
		slog.Warn("Failed to remove staging directory after abort", "staging", dir, logfields.Error(err))
	}
}

// write stores data at rel inside the staging dir.
func (s *stager) write(rel string, data []byte) error {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("artifact path escapes output: %s", rel)
	}
	target := filepath.Join(s.stageDir, clean)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}
