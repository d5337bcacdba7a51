package commands

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/apidocs/internal/build"
	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/logfields"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory (overrides output.directory)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	res, err := RunBuild(g, cfg, b.Output, false)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d files to %s (%s)\n", res.Report.Files, res.OutputPath, res.Report.Outcome)
	return nil
}

// RunBuild executes one build, exporting metrics when metrics.textfile is set.
func RunBuild(g *Global, cfg *config.Config, outputDir string, dryRun bool) (*build.Result, error) {
	svc := build.NewService()
	var recorder *metrics.PrometheusRecorder
	if cfg.Metrics.Textfile != "" && !dryRun {
		recorder = metrics.NewPrometheusRecorder(prom.NewRegistry())
		svc.WithRecorder(recorder)
	}

	res, err := svc.Run(g.ctx(), build.Request{Config: cfg, OutputDir: outputDir, DryRun: dryRun})

	if recorder != nil {
		path := cfg.ResolvePath(cfg.Metrics.Textfile)
		if werr := recorder.WriteTextfile(path); werr != nil {
			g.logger().Warn("Failed to write metrics textfile", logfields.File(path), logfields.Error(werr))
		}
	}
	return res, err
}
