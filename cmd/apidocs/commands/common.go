package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/apidocs/internal/config"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger  *slog.Logger
	Context context.Context
}

func (g *Global) ctx() context.Context {
	if g == nil || g.Context == nil {
		return context.Background()
	}
	return g.Context
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"apidocs.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" help:"Generate routes, sidebars and pages for every configured version"`
	Validate ValidateCmd `cmd:"" help:"Load every version and compile the route table without writing output"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level, _ := levelOverride(c.Verbose)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// levelOverride returns the level forced by -v or APIDOCS_LOG_LEVEL, and
// whether one of them was given.
func levelOverride(verbose bool) (slog.Level, bool) {
	if verbose {
		return slog.LevelDebug, true
	}
	if raw := strings.TrimSpace(os.Getenv("APIDOCS_LOG_LEVEL")); raw != "" {
		if l := config.NormalizeLogLevel(raw); l != "" {
			return l.SlogLevel(), true
		}
	}
	return slog.LevelInfo, false
}

// configureLogging builds the configured logger and makes it the default.
// -v and APIDOCS_LOG_LEVEL win over logging.level.
func configureLogging(cfg *config.Config, verbose bool) *slog.Logger {
	level, forced := levelOverride(verbose)
	if !forced {
		level = cfg.Logging.Level.SlogLevel()
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.Logging.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func loadConfig(g *Global, root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	logger := configureLogging(cfg, root.Verbose)
	if g != nil {
		g.Logger = logger
	}
	return cfg, nil
}
