package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/specref/inspect"
)

func lint(cfg *LintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lint.Parse(cc, args)
	if err != nil {
		cfg.Lint.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lint requires at least one document", cli.ErrUsage)
	}
	g, err := cfg.registry()
	if err != nil {
		return err
	}
	gr, err := inspect.Walk(g, args...)
	if err != nil {
		return err
	}
	colored := cfg.colorEnabled(cc.Out)
	broken := gr.Broken()
	if cfg.Refs {
		for _, e := range gr.Edges {
			writeEdge(cc.Out, e, colored)
		}
	} else {
		for _, e := range broken {
			writeEdge(cc.Out, e, colored)
		}
	}
	fmt.Fprintf(cc.Out, "%d documents, %d references, %d broken\n",
		len(gr.Docs), len(gr.Edges), len(broken))
	if len(broken) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
