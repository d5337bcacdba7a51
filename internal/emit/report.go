package emit

import (
	"os"
	"path/filepath"
)

// WriteReport stores report as build-report.json in dir. It is written after
// promotion so its timings cover the whole build.
func WriteReport(dir string, report any) error {
	data, err := marshalJSON(report)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, BuildReportFile), data, 0o644)
}
