package commands

import (
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/apidocs/internal/build"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(g, root)
	if err != nil {
		return err
	}
	res, err := RunBuild(g, cfg, "", true)
	if err != nil {
		return err
	}
	printSummary(os.Stdout, res.Report)
	return nil
}

func printSummary(w io.Writer, r *build.Report) {
	for _, v := range r.Versions {
		fmt.Fprintf(w, "%-12s %-12s operations=%d pages=%d routes=%d\n", v.Label, v.Path, v.Operations, v.Pages, v.Routes)
	}
	if r.StaticPages > 0 {
		fmt.Fprintf(w, "static pages: %d\n", r.StaticPages)
	}
	for _, o := range r.Overrides {
		fmt.Fprintf(w, "override %s: %s replaces %s\n", o.Path, o.Winner, o.Dropped)
	}
	fmt.Fprintf(w, "routes: %d, outcome: %s\n", r.Routes, r.Outcome)
}
